package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Name", func() {
	It("should parse hierarchical names", func() {
		n, err := ParseName("Node[3].Link[1]")

		Expect(err).NotTo(HaveOccurred())
		Expect(n.Tokens).To(Equal([]NameToken{
			{ElemName: "Node", Index: []int{3}},
			{ElemName: "Link", Index: []int{1}},
		}))
	})

	It("should parse multi-dimensional indices", func() {
		n, err := ParseName("Mesh[1][2]")

		Expect(err).NotTo(HaveOccurred())
		Expect(n.Tokens[0].Index).To(Equal([]int{1, 2}))
	})

	DescribeTable("invalid names",
		func(name string) {
			Expect(func() { NameMustBeValid(name) }).To(Panic())
		},
		Entry("unbalanced bracket", "Node[1"),
		Entry("non-integer index", "Node[a]"),
		Entry("empty element", "Node..In"),
		Entry("trailing dot", "Node."),
		Entry("lowercase element", "Node.in"),
		Entry("underscore", "My_Node"),
	)

	It("should accept valid names", func() {
		Expect(func() { NameMustBeValid("Host[0].Port[2]") }).NotTo(Panic())
	})

	It("should build names", func() {
		Expect(BuildName("", "Node")).To(Equal("Node"))
		Expect(BuildName("Node[0]", "In")).To(Equal("Node[0].In"))
		Expect(BuildNameWithIndex("Node[0]", "Link", 2)).
			To(Equal("Node[0].Link[2]"))
		Expect(BuildNameWithIndex("", "Node", 4)).To(Equal("Node[4]"))
	})
})
