// Package fairness runs a fairness analysis over a finished run.
//
// The analysis is an estimation of starvation from the meal counts in a
// snapshot. A philosopher is flagged when
//   - it never ate, or
//   - it ate less than Ratio times the mean meal count of the table.
//
// The ordered acquisition protocol rules out deadlock but not starvation,
// so a run can pass every safety check and still fail this one.
package fairness // import "github.com/zixu-w/DPP/fairness"

import (
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/zixu-w/DPP/dining"
)

// DefaultRatio is the fraction of the mean meal count below which a
// philosopher is considered starved.
const DefaultRatio = 0.25

// FairnessAnalysis is the result of checking one snapshot.
type FairnessAnalysis struct {
	Ratio float64

	unfair []int
	total  int
	mean   float64
	logger *log.Logger
}

// NewFairnessAnalysis starts a new analysis logging to w.
func NewFairnessAnalysis(w io.Writer) *FairnessAnalysis {
	return &FairnessAnalysis{
		Ratio:  DefaultRatio,
		logger: log.New(w, "fairness: ", 0),
	}
}

// Visit checks every philosopher in s.
func (fa *FairnessAnalysis) Visit(s dining.Snapshot) {
	fa.unfair, fa.total, fa.mean = nil, len(s.Meals), 0
	if fa.total == 0 {
		return
	}
	fa.mean = float64(s.TotalMeals()) / float64(fa.total)
	for id, meals := range s.Meals {
		var wait time.Duration
		if id < len(s.LongestWait) {
			wait = s.LongestWait[id]
		}
		switch {
		case meals == 0:
			fa.unfair = append(fa.unfair, id)
			fa.logger.Println(color.RedString("❌ philosopher %d never ate", id))
		case float64(meals) < fa.Ratio*fa.mean:
			fa.unfair = append(fa.unfair, id)
			fa.logger.Println(color.RedString("❌ philosopher %d ate %s meals (mean %.1f), longest wait %v",
				id, humanize.Comma(int64(meals)), fa.mean, wait))
		default:
			fa.logger.Println(color.GreenString("✓ philosopher %d ate %s meals, longest wait %v",
				id, humanize.Comma(int64(meals)), wait))
		}
	}
}

// Unfair returns the philosophers flagged as starved.
func (fa *FairnessAnalysis) Unfair() []int { return fa.unfair }

// Fair reports whether no philosopher was flagged.
func (fa *FairnessAnalysis) Fair() bool { return len(fa.unfair) == 0 }

// Check runs a fairness analysis of s and logs the result to w.
func Check(s dining.Snapshot, w io.Writer) *FairnessAnalysis {
	fa := NewFairnessAnalysis(w)
	fa.Visit(s)
	if fa.Fair() {
		fa.logger.Println(color.GreenString("Result: no philosopher starved (%d checked)", fa.total))
	} else {
		fa.logger.Println(color.RedString("Result: %d/%d is likely unfair", len(fa.unfair), fa.total))
	}
	return fa
}
