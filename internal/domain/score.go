package domain

import (
	m "drill.dev/pkg/drill/internal/model"
	pkg "drill.dev/pkg/drill/pkg"
)

// scoreFromResults computes the pass ratio over every graded vector in the
// spool. Smoke vectors without a golden file count as passed. A run that
// graded nothing scores 1.0.
func scoreFromResults(results pkg.Spool[m.TaskResult]) (float64, error) {
	passed := 0
	total := 0

	err := results.Range(func(_ uint64, result m.TaskResult) error {
		for _, vector := range result.Vectors {
			total++

			if vector.Verdict.Passing() {
				passed++
			}
		}

		return nil
	})
	if err != nil {
		return 0.0, err
	}

	if total == 0 {
		return 1.0, nil
	}

	return float64(passed) / float64(total), nil
}

// scoreFromTasks is the in-memory counterpart of scoreFromResults, used when
// the task results are already collected (merging shards, narrowing a view).
func scoreFromTasks(tasks []m.TaskResult) float64 {
	passed := 0
	total := 0

	for _, task := range tasks {
		for _, vector := range task.Vectors {
			total++

			if vector.Verdict.Passing() {
				passed++
			}
		}
	}

	if total == 0 {
		return 1.0
	}

	return float64(passed) / float64(total)
}
