package errs_test

import (
	"fmt"

	"github.com/amirdaaee/TGSaver/internal/errs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("user errors", func() {
	It("exposes the message of a wrapped input error", func() {
		err := fmt.Errorf("handle text: %w", errs.NewInputError("Enter valid number."))
		msg, ok := errs.UserMessage(err)
		Expect(ok).To(BeTrue())
		Expect(msg).To(Equal("Enter valid number."))
	})
	It("keeps the cause of a credential error", func() {
		cause := fmt.Errorf("revoked")
		err := errs.NewCredentialError("❌ You must /login first.", cause)
		Expect(err).To(MatchError(cause))
		msg, ok := errs.UserMessage(err)
		Expect(ok).To(BeTrue())
		Expect(msg).To(Equal("❌ You must /login first."))
	})
	It("ignores plain errors", func() {
		_, ok := errs.UserMessage(fmt.Errorf("boom"))
		Expect(ok).To(BeFalse())
	})
	It("compares error types", func() {
		Expect(errs.IsErr(errs.NewInputError("x"), &errs.InputError{})).To(BeTrue())
		Expect(errs.IsErr(errs.NewInputError("x"), &errs.CredentialError{})).To(BeFalse())
	})
})
