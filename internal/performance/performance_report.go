package performance

import (
	"context"
	"math"
	"sort"
	"strings"

	"go-hrms/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const topPerformerLimit = 5

// Report aggregates ratings and reviews. A Manager's report covers their direct reports.
func (s *service) Report(ctx context.Context, actor domain.Actor) (Report, error) {
	managerID := actor.TeamScope()

	var (
		ratings     []RatingRow
		statuses    []StatusCount
		departments []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ratings, err = s.repo.RatingRows(gctx, managerID)
		return err
	})
	g.Go(func() (err error) {
		statuses, err = s.repo.ReviewStatusCounts(gctx, managerID)
		return err
	})
	g.Go(func() (err error) {
		departments, err = s.repo.DepartmentNames(gctx, managerID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("performance report failed", zap.String("manager_id", managerID), zap.Error(err))
		return Report{}, err
	}

	return buildReport(ratings, statuses, departments), nil
}

type accumulator struct {
	sum   int
	count int
}

func (a accumulator) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return round2(float64(a.sum) / float64(a.count))
}

func buildReport(ratings []RatingRow, statuses []StatusCount, departments []string) Report {
	report := Report{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		DepartmentAverages: make(map[string]float64, len(departments)),
		TopPerformers:      []TopPerformer{},
	}

	var overall accumulator
	byDept := make(map[string]*accumulator)
	byEmployee := make(map[uuid.UUID]*accumulator)
	names := make(map[uuid.UUID]string)

	for _, r := range ratings {
		overall.sum += r.Rating
		overall.count++

		bucket := int(math.Round(float64(r.Rating)))
		if bucket >= 1 && bucket <= 5 {
			report.RatingDistribution[bucket]++
		}

		if r.DepartmentName != nil {
			if byDept[*r.DepartmentName] == nil {
				byDept[*r.DepartmentName] = &accumulator{}
			}
			byDept[*r.DepartmentName].sum += r.Rating
			byDept[*r.DepartmentName].count++
		}

		if byEmployee[r.EmployeeID] == nil {
			byEmployee[r.EmployeeID] = &accumulator{}
			names[r.EmployeeID] = strings.TrimSpace(r.FirstName + " " + r.LastName)
		}
		byEmployee[r.EmployeeID].sum += r.Rating
		byEmployee[r.EmployeeID].count++
	}
	report.AverageRating = overall.mean()

	for _, name := range departments {
		report.DepartmentAverages[name] = 0
		if acc := byDept[name]; acc != nil {
			report.DepartmentAverages[name] = acc.mean()
		}
	}

	var total, completed int64
	for _, st := range statuses {
		total += st.Count
		if st.Status == ReviewSubmitted || st.Status == ReviewApproved {
			completed += st.Count
		}
	}
	if total > 0 {
		report.ReviewCompletionRate = round2(float64(completed) / float64(total))
	}

	for id, acc := range byEmployee {
		report.TopPerformers = append(report.TopPerformers, TopPerformer{
			ID:            id.String(),
			Name:          names[id],
			AverageRating: acc.mean(),
		})
	}
	sort.Slice(report.TopPerformers, func(i, j int) bool {
		a, b := report.TopPerformers[i], report.TopPerformers[j]
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		return a.Name < b.Name
	})
	if len(report.TopPerformers) > topPerformerLimit {
		report.TopPerformers = report.TopPerformers[:topPerformerLimit]
	}

	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
