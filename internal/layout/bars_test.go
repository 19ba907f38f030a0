package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortsim/internal/layout"
)

var _ = Describe("Calc", func() {
	limits := layout.DefaultLimits()

	It("keeps the gap and clamps the width when there is room", func() {
		s, err := layout.Calc(20, 5, limits)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(layout.Settings{Width: 3, Gap: 1}))
		Expect(s.Span(5)).To(BeNumerically("<=", 20))
	})

	It("drops the gap before giving up", func() {
		s, err := layout.Calc(10, 10, limits)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(layout.Settings{Width: 1, Gap: 0}))
	})

	It("narrows bars before dropping the gap", func() {
		s, err := layout.Calc(19, 10, limits)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(layout.Settings{Width: 1, Gap: 1}))
	})

	It("fails with the offending quantity when nothing fits", func() {
		_, err := layout.Calc(3, 10, limits)
		var capErr *layout.CapacityError
		Expect(err).To(BeAssignableToTypeOf(capErr))
		Expect(err).To(MatchError(ContainSubstring("10 bars")))
		Expect(err.(*layout.CapacityError).Quantity).To(Equal(10))
	})

	It("rejects a non-positive quantity", func() {
		_, err := layout.Calc(80, 0, limits)
		Expect(err).To(HaveOccurred())
	})

	It("rejects limits that cannot produce a bar", func() {
		_, err := layout.Calc(80, 5, layout.Limits{MinWidth: 0, MaxWidth: 3, MaxGap: 1})
		Expect(err).To(MatchError(layout.ErrInvalidLimits))

		_, err = layout.Calc(80, 5, layout.Limits{MinWidth: 2, MaxWidth: 1, MaxGap: 1})
		Expect(err).To(MatchError(layout.ErrInvalidLimits))
	})

	It("respects a larger configured gap", func() {
		s, err := layout.Calc(30, 5, layout.Limits{MinWidth: 1, MaxWidth: 4, MaxGap: 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(layout.Settings{Width: 3, Gap: 3}))
	})

	DescribeTable("always fits the terminal",
		func(width, quantity int) {
			s, err := layout.Calc(width, quantity, limits)
			if width >= quantity {
				Expect(err).NotTo(HaveOccurred())
				Expect(s.Width).To(BeNumerically(">=", 1))
				Expect(s.Width).To(BeNumerically("<=", 3))
				Expect(s.Gap).To(BeNumerically(">=", 0))
				Expect(s.Span(quantity)).To(BeNumerically("<=", width))
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("tiny", 2, 2),
		Entry("exact single columns", 150, 150),
		Entry("one short", 149, 150),
		Entry("typical", 78, 50),
		Entry("wide", 300, 150),
		Entry("gap just fits", 299, 150),
	)
})

var _ = Describe("Label", func() {
	It("shows values that fit the bar", func() {
		Expect(layout.Label(7, 1)).To(Equal("7"))
		Expect(layout.Label(42, 3)).To(Equal("42"))
		Expect(layout.Label(150, 3)).To(Equal("150"))
	})

	It("hides values wider than the bar", func() {
		Expect(layout.Label(10, 1)).To(BeEmpty())
		Expect(layout.Label(150, 2)).To(BeEmpty())
	})
})

var _ = Describe("Height", func() {
	It("scales the largest value to the full height", func() {
		Expect(layout.Height(150, 150, 20)).To(Equal(20))
		Expect(layout.Height(75, 150, 20)).To(Equal(10))
	})

	It("keeps the smallest value visible", func() {
		Expect(layout.Height(1, 150, 20)).To(Equal(1))
		Expect(layout.Height(0, 150, 20)).To(Equal(1))
	})

	It("has nothing to draw without rows", func() {
		Expect(layout.Height(5, 10, 0)).To(Equal(0))
	})
})

var _ = Describe("Center", func() {
	It("pads both sides with the extra space on the right", func() {
		Expect(layout.Center("7", 3)).To(Equal(" 7 "))
		Expect(layout.Center("42", 3)).To(Equal("42 "))
		Expect(layout.Center("", 2)).To(Equal("  "))
	})

	It("leaves wide text alone", func() {
		Expect(layout.Center("150", 2)).To(Equal("150"))
	})
})
