package types_test

import (
	"encoding/json"
	"testing"

	"github.com/cannondawg34/portfolio/internal/domain/catalog"
	types "github.com/cannondawg34/portfolio/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFilterResult(t *testing.T) {
	Convey("Given a filter result with items", t, func() {
		res := types.FilterResult{
			Items: []catalog.Record{{Slug: "db-proj3", Title: "DB"}},
			Count: 1,
			Total: 7,
		}

		Convey("Then it is not empty and omits suggestions on the wire", func() {
			So(res.Empty(), ShouldBeFalse)
			raw, err := json.Marshal(res)
			So(err, ShouldBeNil)
			So(string(raw), ShouldNotContainSubstring, "suggestions")
			So(string(raw), ShouldContainSubstring, `"total":7`)
		})
	})

	Convey("Given an empty result with suggestions", t, func() {
		res := types.FilterResult{
			Items:       []catalog.Record{},
			Total:       7,
			Suggestions: []catalog.Suggestion{{Slug: "java-tcp-sockets", Title: "TCP", Score: 12}},
		}

		Convey("Then items encode as an empty array", func() {
			So(res.Empty(), ShouldBeTrue)
			raw, err := json.Marshal(res)
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, `"items":[]`)
			So(string(raw), ShouldContainSubstring, `"suggestions":[{"slug":"java-tcp-sockets"`)
		})
	})
}
