// Package template holds the built-in submission workflow catalog: the
// ordered phases with their task templates and the per-platform store
// checklist templates. The tables are process-wide constants loaded once;
// accessors only ever copy out of them.
package template

import (
	"app-submission-api/internal/domain"
)

// TaskTemplate is one immutable workflow step definition. Within a phase,
// Order values are unique and dense starting at 1.
type TaskTemplate struct {
	StepNumber      string
	Title           string
	Description     string
	EstimatedDays   string
	AssignedTo      string
	IOSSpecific     string
	AndroidSpecific string
	Priority        domain.TaskPriority
	Order           int
}

// Phase is a named, numbered stage of the submission workflow
type Phase struct {
	Number      int
	Name        string
	Description string
	Tasks       []TaskTemplate
}

// PlatformTask is a task template annotated with its owning phase and the
// platform-appropriate specific text, as returned by TasksForPlatform.
type PlatformTask struct {
	TaskTemplate
	PhaseName        string
	PhaseNumber      int
	PlatformSpecific string
}

// ChecklistTemplate is one immutable store-listing checklist definition
type ChecklistTemplate struct {
	Title       string
	Description string
	Platform    domain.Platform
	Category    string
	Order       int
}

// PhaseSummary describes one phase for the read API
type PhaseSummary struct {
	PhaseNumber int    `json:"phase_number"`
	PhaseName   string `json:"phase_name"`
	Description string `json:"description"`
	TaskCount   int    `json:"task_count"`
}

// TasksForPlatform returns the task templates applicable to the given
// platform, phases in ascending number and tasks in ascending order.
//
// Filtering policy:
//   - Both: every task of every phase, unfiltered.
//   - iOS: tasks whose IOSSpecific is non-empty, plus platform-neutral
//     tasks (both specific fields empty). PlatformSpecific carries the
//     IOSSpecific value, possibly empty.
//   - Android: symmetric on AndroidSpecific.
//
// Other platform values are the caller's validation problem; the catalog
// returns nil for them.
func TasksForPlatform(platform domain.Platform) []PlatformTask {
	var tasks []PlatformTask

	for _, phase := range defaultPhases {
		for _, task := range phase.Tasks {
			switch platform {
			case domain.PlatformBoth:
				tasks = append(tasks, PlatformTask{
					TaskTemplate: task,
					PhaseName:    phase.Name,
					PhaseNumber:  phase.Number,
				})
			case domain.PlatformIOS:
				if task.IOSSpecific != "" || (task.IOSSpecific == "" && task.AndroidSpecific == "") {
					tasks = append(tasks, PlatformTask{
						TaskTemplate:     task,
						PhaseName:        phase.Name,
						PhaseNumber:      phase.Number,
						PlatformSpecific: task.IOSSpecific,
					})
				}
			case domain.PlatformAndroid:
				if task.AndroidSpecific != "" || (task.IOSSpecific == "" && task.AndroidSpecific == "") {
					tasks = append(tasks, PlatformTask{
						TaskTemplate:     task,
						PhaseName:        phase.Name,
						PhaseNumber:      phase.Number,
						PlatformSpecific: task.AndroidSpecific,
					})
				}
			}
		}
	}

	return tasks
}

// ChecklistForPlatform returns the checklist templates of the given
// platform in ascending order. "Both" is the iOS set followed by the
// Android set, each keeping its internal order.
func ChecklistForPlatform(platform domain.Platform) []ChecklistTemplate {
	switch platform {
	case domain.PlatformIOS:
		return append([]ChecklistTemplate(nil), defaultChecklistIOS...)
	case domain.PlatformAndroid:
		return append([]ChecklistTemplate(nil), defaultChecklistAndroid...)
	case domain.PlatformBoth:
		items := append([]ChecklistTemplate(nil), defaultChecklistIOS...)
		return append(items, defaultChecklistAndroid...)
	default:
		return nil
	}
}

// PhaseSummaries returns the overview of every phase in ascending number
func PhaseSummaries() []PhaseSummary {
	summaries := make([]PhaseSummary, len(defaultPhases))
	for i, phase := range defaultPhases {
		summaries[i] = PhaseSummary{
			PhaseNumber: phase.Number,
			PhaseName:   phase.Name,
			Description: phase.Description,
			TaskCount:   len(phase.Tasks),
		}
	}
	return summaries
}

// PhaseName returns the catalog name of a phase number, or "" if unknown
func PhaseName(number int) string {
	for _, phase := range defaultPhases {
		if phase.Number == number {
			return phase.Name
		}
	}
	return ""
}
