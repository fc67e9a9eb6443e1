package invariants

import (
	"errors"

	"github.com/dshills/logicrando/pkg/logic"
	"github.com/dshills/logicrando/pkg/rerr"
)

// Validate runs every post-randomize property check against l and
// returns the aggregate Report: check every hard constraint, accumulate
// the results, then decide Passed. bans and progressionItems feed
// CheckBanRespected; every other check reads entirely from l and its
// Placement.
//
// A non-nil error is always an *rerr.InvariantViolation wrapping the
// first failed check's name: a post-randomize check found something
// unreachable that should be reachable, which is fatal and indicates a
// bug. Unlike ConfigError or GenerationFailed, callers are not expected
// to recover from this error; it means pkg/fill, pkg/entrance, or
// pkg/solver produced a result that should have been impossible.
func Validate(l *logic.Logic, demiseTarget string, bans []string, progressionItems []string) (*Report, error) {
	report := NewReport()

	report.record(CheckCompleteness(l, demiseTarget))
	report.record(CheckBijectivity(l))
	report.record(CheckPlacementLimit(l))
	report.record(CheckStartingItemsUntouched(l))
	report.record(CheckUnplacedItemsAbsent(l))
	report.record(CheckBanRespected(l, bans, progressionItems))

	if !report.Passed {
		for _, result := range report.Results {
			if !result.Satisfied {
				return report, rerr.NewInvariantViolation(result.Name, errors.New(result.Details))
			}
		}
	}
	return report, nil
}
