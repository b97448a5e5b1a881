package metrics

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// AddTasksGenerated records how many default tasks a materialization produced
func (m *Metrics) AddTasksGenerated(count int) {
	m.safeExecute("AddTasksGenerated", func() {
		m.TasksGeneratedTotal.Add(float64(count))
	})
}

// AddChecklistGenerated records how many default checklist items a materialization produced
func (m *Metrics) AddChecklistGenerated(count int) {
	m.safeExecute("AddChecklistGenerated", func() {
		m.ChecklistGeneratedTotal.Add(float64(count))
	})
}

// IncrementRejectionAnalyzed increments the AI rejection analysis counter
func (m *Metrics) IncrementRejectionAnalyzed() {
	m.safeExecute("IncrementRejectionAnalyzed", func() {
		m.RejectionAnalyzedTotal.Inc()
	})
}

// IncrementFilesUploaded increments the checklist file upload counter
func (m *Metrics) IncrementFilesUploaded() {
	m.safeExecute("IncrementFilesUploaded", func() {
		m.FilesUploadedTotal.Inc()
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetOpenRejectionsTotal sets the unresolved rejections gauge
func (m *Metrics) SetOpenRejectionsTotal(count int64) {
	m.safeExecute("SetOpenRejectionsTotal", func() {
		m.OpenRejectionsTotal.Set(float64(count))
	})
}
