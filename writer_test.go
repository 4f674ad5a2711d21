package keyindex_test

import (
	"bytes"
	"strings"

	"github.com/bsm/keyindex"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Writer", func() {
	var doc, sidecar *bytes.Buffer
	var subject *keyindex.Writer

	BeforeEach(func() {
		doc, sidecar = new(bytes.Buffer), new(bytes.Buffer)
		subject = keyindex.NewWriter(doc, sidecar, nil)
	})

	AfterEach(func() {
		_ = subject.Close()
	})

	It("should write empty", func() {
		Expect(subject.Close()).To(Succeed())
		Expect(doc.Len()).To(Equal(0))
		Expect(sidecar.Len()).To(Equal(0))
	})

	It("should write fields and records", func() {
		Expect(subject.Append(3, "foo")).To(Succeed())
		Expect(subject.Offset()).To(Equal(64))
		Expect(subject.Append(0x0102, "bar")).To(Succeed())
		Expect(subject.Offset()).To(Equal(128))
		Expect(subject.Close()).To(Succeed())

		Expect(doc.String()).To(Equal("k~foo~" + strings.Repeat(" ", 58) + "k~bar~" + strings.Repeat(" ", 58)))
		Expect(sidecar.Bytes()).To(Equal([]byte{
			0x00, 0x00, 0x03, 0x00,
			0x40, 0x00, 0x02, 0x01,
		}))
	})

	It("should support options", func() {
		subject = keyindex.NewWriter(doc, sidecar, &keyindex.WriterOptions{Prefix: "<a id=", Padding: '.'})
		Expect(subject.Append(1, "x")).To(Succeed())
		Expect(doc.String()).To(Equal("<a id=~x~" + strings.Repeat(".", 55)))

		doc.Reset()
		subject = keyindex.NewWriter(doc, sidecar, &keyindex.WriterOptions{Prefix: "a~b", Padding: '~'})
		Expect(subject.Append(1, "x")).To(Succeed())
		Expect(doc.String()).To(Equal("k~x~" + strings.Repeat(" ", 60)))
	})

	It("should write raw records", func() {
		Expect(subject.AppendRecord(keyindex.Record{Offset: 0xffff, Value: 2048})).To(Succeed())
		Expect(doc.Len()).To(Equal(0))
		Expect(sidecar.Bytes()).To(Equal([]byte{0xff, 0xff, 0x00, 0x08}))
	})

	It("should reject bad keys", func() {
		Expect(subject.Append(1, "a~b")).To(MatchError(`keyindex: key must not contain the delimiter`))
		Expect(subject.Append(1, strings.Repeat("k", 62))).To(MatchError(`keyindex: key does not fit into a field`))
		Expect(subject.Append(1, strings.Repeat("k", 61))).To(Succeed())
		Expect(doc.Len()).To(Equal(64))
		Expect(sidecar.Len()).To(Equal(4))
	})

	It("should reject unaddressable offsets", func() {
		for i := 0; i < 1024; i++ {
			Expect(subject.Append(uint16(i), "k")).To(Succeed())
		}
		Expect(subject.Offset()).To(Equal(65536))
		Expect(subject.Append(1, "k")).To(MatchError(`keyindex: document exceeds addressable offset range`))
	})

	It("should prevent writes after close", func() {
		Expect(subject.Close()).To(Succeed())
		Expect(subject.Append(1, "k")).To(MatchError(`keyindex: is closed`))
		Expect(subject.AppendRecord(keyindex.Record{})).To(MatchError(`keyindex: is closed`))
		Expect(subject.Close()).To(MatchError(`keyindex: is closed`))
	})
})
