package questions

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSession(t *testing.T) {
	question := Question{
		Id:            "q1",
		QuestionText:  "2 + 2 = ?",
		OptionA:       "3",
		OptionB:       "4",
		OptionC:       "5",
		OptionD:       "22",
		CorrectAnswer: "B",
	}

	Convey("Given a timed question session", t, func() {
		clock := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
		session := newSession(question, func() time.Time {
			return clock
		})

		Convey("A correct answer is graded with elapsed time", func() {
			clock = clock.Add(42 * time.Second)
			result, err := session.Answer("b")
			So(err, ShouldBeNil)
			So(result.Correct, ShouldBeTrue)
			So(result.Elapsed, ShouldEqual, 42*time.Second)
			So(result.QuestionId, ShouldEqual, "q1")
		})

		Convey("A wrong answer grades false", func() {
			result, err := session.Answer("A")
			So(err, ShouldBeNil)
			So(result.Correct, ShouldBeFalse)
		})

		Convey("A session accepts exactly one answer", func() {
			_, err := session.Answer("B")
			So(err, ShouldBeNil)
			_, err = session.Answer("B")
			So(err, ShouldEqual, ErrAlreadyAnswered)
		})
	})
}

func TestIsCorrect(t *testing.T) {
	q := Question{CorrectAnswer: "C"}

	var tests = []struct {
		in  string
		out bool
	}{
		{"C", true},
		{"c", true},
		{" c ", true},
		{"B", false},
		{"", false},
	}

	for _, test := range tests {
		if out := q.IsCorrect(test.in); out != test.out {
			t.Errorf("%q: %t != %t", test.in, out, test.out)
		}
	}
}
