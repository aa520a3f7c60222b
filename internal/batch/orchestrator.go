// Package batch drives per-user conversations and batch runs over fetched items.
package batch

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirdaaee/TGSaver/internal/events"
	"github.com/amirdaaee/TGSaver/internal/facade"
	"github.com/amirdaaee/TGSaver/internal/fetcher"
	"github.com/amirdaaee/TGSaver/internal/link"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/notify"
	"github.com/amirdaaee/TGSaver/internal/router"
	"github.com/amirdaaee/TGSaver/internal/state"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/amirdaaee/TGSaver/internal/transfer"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RestartNotice = "⚠️ Bot restarted. Your task has been reset. Please retry."

const (
	DefaultSkipDelay = 2 * time.Second
	DefaultItemDelay = 3 * time.Second
)

// ISweeper removes stale artifacts before a new run starts.
type ISweeper interface {
	Sweep() (int, error)
}

// IOrchestrator is what the bot and the admin API drive.
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/batch/orchestrator.go -package=mocks
type IOrchestrator interface {
	Begin(ctx context.Context, userID, chat int64, mode Mode) error
	// HandleText feeds a plain message into the user's conversation; false when there is none.
	HandleText(ctx context.Context, userID, chat int64, text string) bool
	Cancel(ctx context.Context, userID int64) (CancelResult, error)
	CancelAll(ctx context.Context) CancelAllReport
	Recover(ctx context.Context) (notify.Report, error)
	ActiveRuns() []Run
	ClearCaches() int
}

type Deps struct {
	// UI is the main bot; conversation replies and run reports go through it.
	UI       tlg.IMessenger
	Router   router.IRouter
	Fetcher  fetcher.IFetcher
	Engine   transfer.IEngine
	Quota    facade.IQuotaGate
	Store    state.IStore
	Notifier notify.INotifier
	Events   events.IPublisher
	Sweeper  ISweeper
}

type Options struct {
	FreemiumLimit       int
	FreeBatchDailyLimit int
	SkipDelay           time.Duration
	ItemDelay           time.Duration
	Sleep               tlg.SleepFunc
	Now                 func() time.Time
}

type Orchestrator struct {
	Deps
	opts  Options
	users *table
	base  context.Context
	wg    sync.WaitGroup
}

var _ IOrchestrator = (*Orchestrator)(nil)

type Run struct {
	UserID int64
	state.RunRecord
}

type CancelResult int

const (
	NothingToCancel CancelResult = iota
	CancelRequested
	ConversationCleared
)

func (r CancelResult) String() string {
	switch r {
	case CancelRequested:
		return "Cancellation requested. Batch will stop after current file completes."
	case ConversationCleared:
		return "Cancelled."
	}
	return "No active batch process found."
}

type CancelAllReport struct {
	Users                []int64
	Flagged              int
	ConversationsCleared int
	KeysCleared          int
	LocksCleared         int
	InflightCleared      int
}

// runSpec is everything a run loop needs once the conversation is over.
type runSpec struct {
	userID   int64
	chat     int64
	start    link.Ref
	count    int
	statusID int
	bot      tlg.IMessenger
	session  tlg.IMessenger
}

// Begin opens a conversation for /batch or /single.
func (o *Orchestrator) Begin(ctx context.Context, userID, chat int64, mode Mode) error {
	ll := o.getLogger("Begin").WithField("user", userID)
	premium, err := o.Quota.IsPremium(ctx, userID)
	if err != nil {
		return fmt.Errorf("can not check premium state: %w", err)
	}
	if o.opts.FreemiumLimit == 0 && !premium {
		o.say(ctx, chat, "This bot does not provide free services, get a subscription from the owner.")
		return nil
	}
	if mode == ModeBatch && !premium {
		ok, err := o.Quota.ConsumeFreeBatchQuota(ctx, userID, o.opts.FreeBatchDailyLimit)
		if err != nil {
			return fmt.Errorf("can not consume batch quota: %w", err)
		}
		if !ok {
			o.say(ctx, chat, fmt.Sprintf("Free users can use /batch only %d times per day.", o.opts.FreeBatchDailyLimit))
			return nil
		}
	}
	if o.Sweeper != nil {
		if _, err := o.Sweeper.Sweep(); err != nil {
			ll.WithError(err).Warn("sweep failed")
		}
	}

	e := o.users.acquire(userID)
	defer o.users.release(userID, e)
	e.mu.Lock()
	defer e.mu.Unlock()

	statusID := o.say(ctx, chat, "Doing some checks hold on...")
	if o.hasRun(userID, e) {
		o.edit(ctx, chat, statusID, "You have an active task. Use /stop to cancel it.")
		return nil
	}
	if _, err := o.Router.GetBotClient(ctx, userID); err != nil {
		ll.WithError(err).Info("no bot client")
		o.edit(ctx, chat, statusID, "Add your bot with /setbot first")
		return nil
	}
	e.conv = &conversation{step: StepAwaitingLink, mode: mode, chat: chat}
	if mode == ModeBatch {
		o.edit(ctx, chat, statusID, "Send start link...")
	} else {
		o.edit(ctx, chat, statusID, "Send link you want to process.")
	}
	return nil
}

func (o *Orchestrator) HandleText(ctx context.Context, userID, chat int64, text string) bool {
	e := o.users.acquireExisting(userID)
	if e == nil {
		return false
	}
	defer o.users.release(userID, e)
	e.mu.Lock()
	if e.conv == nil {
		e.mu.Unlock()
		return false
	}
	next := o.step(ctx, userID, chat, strings.TrimSpace(text), e)
	e.mu.Unlock()
	switch {
	case next.single != nil:
		o.runSingle(ctx, next.single)
	case next.batch != nil:
		o.users.acquire(userID)
		o.wg.Add(1)
		go o.run(*next.batch, e)
	}
	return true
}

// followUp is work that step leaves for after the user lock is released.
type followUp struct {
	single *runSpec
	batch  *runSpec
}

// step advances the conversation; e.mu is held.
func (o *Orchestrator) step(ctx context.Context, userID, chat int64, text string, e *entry) followUp {
	ll := o.getLogger("step").WithField("user", userID)
	bot, err := o.Router.GetBotClient(ctx, userID)
	if err != nil {
		ll.WithError(err).Info("no bot client")
		o.say(ctx, chat, "Add your bot /setbot `token`")
		e.conv = nil
		return followUp{}
	}
	conv := e.conv
	switch conv.step {
	case StepAwaitingLink:
		ref, ok := link.Parse(text)
		if !ok {
			o.say(ctx, chat, "Invalid link format.")
			e.conv = nil
			return followUp{}
		}
		if ref.Visibility == link.Private && !o.Router.HasSession(ctx, userID) {
			o.say(ctx, chat, "❌ You must /login first to download from private channels/groups.")
			e.conv = nil
			return followUp{}
		}
		if conv.mode == ModeBatch {
			conv.ref = ref
			conv.step = StepAwaitingCount
			o.say(ctx, chat, "How many messages?")
			return followUp{}
		}
		e.conv = nil
		if o.hasRun(userID, e) {
			o.say(ctx, chat, "Active task exists. Use /stop first.")
			return followUp{}
		}
		statusID := o.say(ctx, chat, "Processing...")
		session, ok := o.sessionFor(ctx, userID, ref)
		if !ok {
			o.edit(ctx, chat, statusID, "❌ Login session missing/invalid. Please /login again.")
			return followUp{}
		}
		return followUp{single: &runSpec{userID: userID, chat: chat, start: ref, count: 1, statusID: statusID, bot: bot, session: session}}
	case StepAwaitingCount:
		count, err := strconv.Atoi(text)
		if err != nil || count < 1 || !isDigits(text) {
			o.say(ctx, chat, "Enter valid number.")
			return followUp{}
		}
		limit, err := o.Quota.TierLimit(ctx, userID)
		if err != nil {
			ll.WithError(err).Error("can not read tier limit")
			o.say(ctx, chat, "Something went wrong, try again later.")
			e.conv = nil
			return followUp{}
		}
		if count > limit {
			o.say(ctx, chat, fmt.Sprintf("Maximum limit is %d.", limit))
			return followUp{}
		}
		ref := conv.ref
		if ref.Visibility == link.Private && !o.Router.HasSession(ctx, userID) {
			o.say(ctx, chat, "❌ You must /login first to download from private channels/groups.")
			e.conv = nil
			return followUp{}
		}
		session, ok := o.sessionFor(ctx, userID, ref)
		if !ok {
			o.say(ctx, chat, "❌ Login session missing/invalid. Please /login again.")
			e.conv = nil
			return followUp{}
		}
		if o.hasRun(userID, e) {
			o.say(ctx, chat, "Active task exists. Use /stop first.")
			e.conv = nil
			return followUp{}
		}
		statusID := o.say(ctx, chat, "Processing batch...")
		if err := o.Store.Put(ctx, userID, state.RunRecord{Total: count, ProgressMessageID: statusID}); err != nil {
			ll.WithError(err).Error("can not persist run")
		}
		e.conv = nil
		e.running = true
		return followUp{batch: &runSpec{userID: userID, chat: chat, start: ref, count: count, statusID: statusID, bot: bot, session: session}}
	}
	e.conv = nil
	return followUp{}
}

// sessionFor resolves the session client; only private references require one.
func (o *Orchestrator) sessionFor(ctx context.Context, userID int64, ref link.Ref) (tlg.IMessenger, bool) {
	if ref.Visibility != link.Private && !o.Router.HasSession(ctx, userID) {
		return nil, true
	}
	session, err := o.Router.GetSessionClient(ctx, userID)
	if err != nil {
		o.getLogger("sessionFor").WithError(err).WithField("user", userID).Info("session unavailable")
		return nil, ref.Visibility != link.Private
	}
	return session, true
}

func (o *Orchestrator) runSingle(ctx context.Context, spec *runSpec) {
	item, err := o.Fetcher.Fetch(ctx, spec.bot, spec.session, spec.start)
	if err != nil || item == nil {
		o.edit(ctx, spec.chat, spec.statusID, "Message not found / deleted / no access.")
		return
	}
	if o.users.seen(spec.userID, spec.start.Key()) {
		o.edit(ctx, spec.chat, spec.statusID, "Already processed (duplicate).")
		return
	}
	out := o.transferOne(ctx, spec, item)
	o.edit(ctx, spec.chat, spec.statusID, "1/1: "+out.String())
}

// run walks the batch on its own goroutine; e was acquired on its behalf.
func (o *Orchestrator) run(spec runSpec, e *entry) {
	ctx := o.base
	runID := uuid.NewString()
	ll := o.getLogger("run").WithField("user", spec.userID).WithField("run", runID)
	success := 0
	cancelled := false
	defer func() {
		if r := recover(); r != nil {
			ll.Errorf("run aborted: %v", r)
		}
		if err := o.Store.Remove(ctx, spec.userID); err != nil {
			ll.WithError(err).Error("can not drop run")
		}
		e.mu.Lock()
		e.running = false
		e.conv = nil
		e.mu.Unlock()
		o.users.release(spec.userID, e)
		ev := events.RunFinished
		if cancelled {
			ev = events.RunCancelled
		}
		o.publish(ctx, events.Event{Type: ev, RunID: runID, UserID: spec.userID, Total: spec.count, Success: success})
		o.wg.Done()
	}()
	o.publish(ctx, events.Event{Type: events.RunStarted, RunID: runID, UserID: spec.userID, Total: spec.count})

	for j := 0; j < spec.count; j++ {
		if o.cancelRequested(spec.userID) {
			o.edit(ctx, spec.chat, spec.statusID, fmt.Sprintf("Cancelled at %d/%d. Success: %d", j, spec.count, success))
			cancelled = true
			break
		}
		if o.runItem(ctx, &spec, runID, j, success, ll) {
			success++
		}
	}
	if !cancelled && !o.cancelRequested(spec.userID) {
		o.say(ctx, spec.chat, fmt.Sprintf("Batch Completed ✅ Success: %d/%d", success, spec.count))
	}
}

// runItem handles item j and reports whether it was sent. A panic costs
// only that item.
func (o *Orchestrator) runItem(ctx context.Context, spec *runSpec, runID string, j, success int, ll *logrus.Entry) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			ll.Errorf("item %d aborted: %v", j+1, r)
			o.report(ctx, spec, runID, j, success, transfer.Outcome{Kind: transfer.Failed, Reason: transfer.Truncate(fmt.Sprint(r), 60)})
			sent = false
		}
	}()
	if _, err := o.Store.Update(ctx, spec.userID, func(r *state.RunRecord) {
		r.Current = j
		r.Success = success
	}); err != nil {
		ll.WithError(err).Warn("can not persist progress")
	}
	ref := spec.start.WithItem(spec.start.ItemID + j)
	if o.users.seen(spec.userID, ref.Key()) {
		return false
	}
	item, err := o.Fetcher.Fetch(ctx, spec.bot, spec.session, ref)
	if err != nil {
		ll.WithError(err).Warnf("lookup of %s failed", ref.Key())
	}
	if item == nil {
		o.edit(ctx, spec.chat, spec.statusID, fmt.Sprintf("%d/%d: Skipped (not found/access). ✅ %d", j+1, spec.count, success))
		o.pause(ctx, o.opts.SkipDelay)
		return false
	}
	out := o.transferOne(ctx, spec, item)
	if out.Success() {
		success++
	}
	o.report(ctx, spec, runID, j, success, out)
	return out.Success()
}

func (o *Orchestrator) report(ctx context.Context, spec *runSpec, runID string, j, success int, out transfer.Outcome) {
	o.publish(ctx, events.Event{Type: events.ItemDone, RunID: runID, UserID: spec.userID, Index: j + 1, Total: spec.count, Success: success, Outcome: out.String()})
	o.edit(ctx, spec.chat, spec.statusID, fmt.Sprintf("%d/%d: %s | ✅ %d", j+1, spec.count, out, success))
	o.pause(ctx, o.opts.ItemDelay)
}

// transferOne never panics; a panic inside becomes a failed outcome.
func (o *Orchestrator) transferOne(ctx context.Context, spec *runSpec, item *fetcher.Fetched) (out transfer.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = transfer.Outcome{Kind: transfer.Failed, Reason: transfer.Truncate(fmt.Sprint(r), 60)}
		}
	}()
	return o.Engine.Transfer(ctx, transfer.Request{
		Item:         item,
		Ref:          spec.start.WithItem(item.ID),
		UserID:       spec.userID,
		InvokingChat: spec.chat,
		Bot:          spec.bot,
		Session:      spec.session,
	})
}

func (o *Orchestrator) Cancel(ctx context.Context, userID int64) (CancelResult, error) {
	if _, ok := o.Store.Get(userID); ok {
		ok, err := o.Store.Update(ctx, userID, func(r *state.RunRecord) { r.CancelRequested = true })
		if err != nil {
			return NothingToCancel, fmt.Errorf("failed to request cancellation: %w", err)
		}
		if ok {
			return CancelRequested, nil
		}
	}
	e := o.users.acquireExisting(userID)
	if e == nil {
		return NothingToCancel, nil
	}
	defer o.users.release(userID, e)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.conv != nil {
		e.conv = nil
		return ConversationCleared, nil
	}
	return NothingToCancel, nil
}

// CancelAll flags every run for cancellation and drops all transient state.
// Running loops stop after their current item.
func (o *Orchestrator) CancelAll(ctx context.Context) CancelAllReport {
	ll := o.getLogger("CancelAll")
	rep := CancelAllReport{}
	for uid := range o.Store.Snapshot() {
		ok, err := o.Store.Update(ctx, uid, func(r *state.RunRecord) { r.CancelRequested = true })
		if err != nil {
			ll.WithError(err).Warnf("can not flag run of %d", uid)
		}
		if ok {
			rep.Flagged++
			rep.Users = append(rep.Users, uid)
		}
	}
	sort.Slice(rep.Users, func(i, j int) bool { return rep.Users[i] < rep.Users[j] })
	o.users.each(func(_ int64, e *entry) {
		if e.conv != nil {
			rep.ConversationsCleared++
			e.conv = nil
		}
	})
	rep.KeysCleared = o.users.clearKeys()
	rep.LocksCleared = o.users.prune()
	if o.Engine != nil {
		rep.InflightCleared = o.Engine.ClearInflight()
	}
	o.publish(ctx, events.Event{Type: events.RunsReset, Total: rep.Flagged})
	return rep
}

// Recover abandons whatever a previous process left behind: every affected user
// is notified once and the run document is emptied.
func (o *Orchestrator) Recover(ctx context.Context) (notify.Report, error) {
	ll := o.getLogger("Recover")
	if err := o.Store.Load(ctx); err != nil {
		return notify.Report{}, fmt.Errorf("can not load runs: %w", err)
	}
	targets := []int64{}
	for uid := range o.Store.Snapshot() {
		if _, err := o.Store.Update(ctx, uid, func(r *state.RunRecord) { r.CancelRequested = true }); err != nil {
			ll.WithError(err).Warnf("can not flag run of %d", uid)
		}
		targets = append(targets, uid)
	}
	o.users.each(func(uid int64, e *entry) {
		if e.conv != nil {
			targets = append(targets, uid)
			e.conv = nil
		}
	})
	o.users.clearKeys()
	o.users.prune()
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	rep := notify.Report{}
	if len(targets) > 0 {
		rep = o.Notifier.Bulk(ctx, targets, RestartNotice)
		ll.Infof("%d abandoned tasks reset, notified %s", len(targets), rep)
	}
	if err := o.Store.Reset(ctx); err != nil {
		return rep, fmt.Errorf("can not reset runs: %w", err)
	}
	o.publish(ctx, events.Event{Type: events.RunsReset, Total: len(targets)})
	return rep, nil
}

func (o *Orchestrator) ActiveRuns() []Run {
	snap := o.Store.Snapshot()
	runs := make([]Run, 0, len(snap))
	for uid, rec := range snap {
		runs = append(runs, Run{UserID: uid, RunRecord: rec})
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].UserID < runs[j].UserID })
	return runs
}

// ClearCaches forgets processed keys and idle entries; it returns the number of keys dropped.
func (o *Orchestrator) ClearCaches() int {
	n := o.users.clearKeys()
	o.users.prune()
	return n
}

// Wait blocks until every run loop has returned.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

func (o *Orchestrator) hasRun(userID int64, e *entry) bool {
	if e.running {
		return true
	}
	_, ok := o.Store.Get(userID)
	return ok
}

func (o *Orchestrator) cancelRequested(userID int64) bool {
	rec, ok := o.Store.Get(userID)
	return ok && rec.CancelRequested
}

// say sends a text to chat and returns its id, 0 when sending failed.
func (o *Orchestrator) say(ctx context.Context, chat int64, text string) int {
	var id int
	err := tlg.RetryFloodWaitWith(ctx, o.opts.Sleep, func(ctx context.Context) error {
		var err error
		id, err = o.UI.SendText(ctx, chat, 0, text)
		return err
	})
	if err != nil {
		o.getLogger("say").WithError(err).Warnf("can not message %d", chat)
		return 0
	}
	return id
}

// edit updates a status message; without one it sends text instead.
func (o *Orchestrator) edit(ctx context.Context, chat int64, msgID int, text string) {
	if msgID == 0 {
		o.say(ctx, chat, text)
		return
	}
	err := tlg.RetryFloodWaitWith(ctx, o.opts.Sleep, func(ctx context.Context) error {
		return o.UI.EditText(ctx, chat, msgID, text)
	})
	if err != nil {
		o.getLogger("edit").WithError(err).Debugf("can not edit %d", msgID)
	}
}

func (o *Orchestrator) pause(ctx context.Context, d time.Duration) {
	_ = o.opts.Sleep(ctx, d)
}

func (o *Orchestrator) publish(ctx context.Context, ev events.Event) {
	if o.Events == nil {
		return
	}
	ev.At = o.opts.Now()
	if err := o.Events.Publish(ctx, ev); err != nil {
		o.getLogger("publish").WithError(err).Debug("event dropped")
	}
}

func (o *Orchestrator) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.BatchModule).WithField("func", fmt.Sprintf("%T.%s", o, fn))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// NewOrchestrator builds an orchestrator whose run loops live as long as base.
func NewOrchestrator(base context.Context, deps Deps, opts Options) *Orchestrator {
	if opts.Sleep == nil {
		opts.Sleep = tlg.Sleep
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SkipDelay == 0 {
		opts.SkipDelay = DefaultSkipDelay
	}
	if opts.ItemDelay == 0 {
		opts.ItemDelay = DefaultItemDelay
	}
	return &Orchestrator{Deps: deps, opts: opts, users: newTable(), base: base}
}
