package web

type RunType struct {
	UserID            int64 `json:"user_id"`
	Total             int   `json:"total"`
	Current           int   `json:"current"`
	Success           int   `json:"success"`
	CancelRequested   bool  `json:"cancel_requested"`
	ProgressMessageID int   `json:"progress_message_id"`
}
type RunsGetResType struct {
	Runs []RunType `json:"runs"`
}

// RunsCancelPostReqType targets one user, or every run when All is set.
type RunsCancelPostReqType struct {
	UserID int64 `json:"user_id"`
	All    bool  `json:"all"`
}
type RunsCancelPostResType struct {
	Result               string  `json:"result,omitempty"`
	Users                []int64 `json:"users,omitempty"`
	Flagged              int     `json:"flagged"`
	ConversationsCleared int     `json:"conversations_cleared"`
	KeysCleared          int     `json:"keys_cleared"`
	LocksCleared         int     `json:"locks_cleared"`
	InflightCleared      int     `json:"inflight_cleared"`
}
type CacheClearPostResType struct {
	KeysCleared int `json:"keys_cleared"`
}
