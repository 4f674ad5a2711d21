package keyindex_test

import (
	"errors"

	"github.com/bsm/keyindex"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	It("should wrap capacity errors", func() {
		var err error = &keyindex.CapacityError{Value: 2048, MaxSlots: 2048}
		Expect(errors.Is(err, keyindex.ErrCapacityExceeded)).To(BeTrue())
		Expect(errors.Is(err, keyindex.ErrUnsupportedExtension)).To(BeFalse())
		Expect(err).To(MatchError(`keyindex: value 2048 out of range, increase max slots (currently 2048) to at least 2049`))

		err = &keyindex.CapacityError{Value: 9, MaxSlots: 8, Sidecar: "page.ht#"}
		Expect(err).To(MatchError(`keyindex: value 9 in page.ht# out of range, increase max slots (currently 8) to at least 10`))
	})

	It("should wrap extension errors", func() {
		var err error = &keyindex.ExtensionError{Name: "page.tx#", Ext: ".tx#"}
		Expect(errors.Is(err, keyindex.ErrUnsupportedExtension)).To(BeTrue())
		Expect(err).To(MatchError(`keyindex: unexpected extension .tx# (page.tx#)`))
	})
})
