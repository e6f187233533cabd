package solver

import "time"

// StudyRow is one grid refinement level of a convergence study.
type StudyRow struct {
	Points    int
	Energy    float64
	Deviation float64 // vs analytic ground state; NaN-free, -1 when unknown
	Elapsed   time.Duration
}

// GridStudy re-solves the ground state across a sweep of grid sizes,
// showing how the chosen method converges (or where its approximation
// breaks down).
func (l *Lab) GridStudy(name string, opts Options, pointCounts []int) ([]StudyRow, error) {
	rows := make([]StudyRow, 0, len(pointCounts))
	opts.States = 1

	for _, n := range pointCounts {
		o := opts
		o.Points = n
		res, err := l.Solve(name, o)
		if err != nil {
			return nil, err
		}

		row := StudyRow{Points: n, Deviation: -1, Elapsed: res.Elapsed}
		if len(res.Pairs) > 0 {
			row.Energy = res.Pairs[0].Energy
			if len(res.Deviations) > 0 {
				row.Deviation = res.Deviations[0]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
