package types_test

import (
	"encoding/json"
	"math"
	"testing"

	types "github.com/okian/cricanalytics/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNullFloat64(t *testing.T) {
	Convey("Given a NullFloat64", t, func() {
		Convey("When using the zero value", func() {
			var n types.NullFloat64

			Convey("Then it should be null", func() {
				_, ok := n.Float64()
				So(ok, ShouldBeFalse)
				So(n.String(), ShouldEqual, "-")
			})
		})

		Convey("When wrapping a defined value", func() {
			n := types.Some(4)

			Convey("Then it should expose the value", func() {
				v, ok := n.Float64()
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 4.0)
				So(n.String(), ShouldEqual, "4.00")
			})
		})

		Convey("When rounding", func() {
			So(types.Some(33.33333).Round2(), ShouldResemble, types.Some(33.33))
			So(types.Some(66.666).Round2(), ShouldResemble, types.Some(66.67))
			So(types.Null().Round2(), ShouldResemble, types.Null())
		})
	})
}

func TestRatio(t *testing.T) {
	Convey("Given the Ratio helper", t, func() {
		Convey("When the denominator is zero", func() {
			Convey("Then the result should be null rather than infinity", func() {
				So(types.Ratio(4, 0).Valid, ShouldBeFalse)
				So(types.Ratio(0, 0).Valid, ShouldBeFalse)
			})
		})

		Convey("When the operands are not finite", func() {
			So(types.Ratio(math.Inf(1), 1).Valid, ShouldBeFalse)
			So(types.Ratio(math.NaN(), 1).Valid, ShouldBeFalse)
		})

		Convey("When both operands are defined", func() {
			So(types.Ratio(4, 2), ShouldResemble, types.Some(2))
		})
	})
}

func TestNullFloat64JSON(t *testing.T) {
	Convey("Given a struct carrying nullable ratios", t, func() {
		type row struct {
			Average types.NullFloat64 `json:"average"`
			Rate    types.NullFloat64 `json:"rate"`
		}

		Convey("When it is encoded", func() {
			b, err := json.Marshal(row{Average: types.Null(), Rate: types.Some(200)})

			Convey("Then undefined values should be null", func() {
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, `{"average":null,"rate":200}`)
			})
		})

		Convey("When it is decoded", func() {
			var r row
			err := json.Unmarshal([]byte(`{"average":null,"rate":12.5}`), &r)

			Convey("Then null and numbers should round-trip", func() {
				So(err, ShouldBeNil)
				So(r.Average.Valid, ShouldBeFalse)
				So(r.Rate, ShouldResemble, types.Some(12.5))
			})
		})

		Convey("When the payload is not a number", func() {
			var n types.NullFloat64
			So(json.Unmarshal([]byte(`"x"`), &n), ShouldNotBeNil)
		})
	})
}

func TestRound2(t *testing.T) {
	Convey("Given values with more than two decimals", t, func() {
		So(types.Round2(200), ShouldEqual, 200.0)
		So(types.Round2(80), ShouldEqual, 80.0)
		So(types.Round2(12.3456), ShouldEqual, 12.35)
		So(types.Round2(-12.3456), ShouldEqual, -12.35)
	})

	Convey("Given values exactly halfway between two cents", t, func() {
		So(types.Round2(3.125), ShouldEqual, 3.12)
		So(types.Round2(0.125), ShouldEqual, 0.12)
		So(types.Round2(0.375), ShouldEqual, 0.38)
		So(types.Round2(-3.125), ShouldEqual, -3.12)
	})
}
