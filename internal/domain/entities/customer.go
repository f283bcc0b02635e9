package entities

import "sort"

// Customer is a derived grouping of jobs by phone number. It is not an
// independent source of truth: it is always re-derivable by filtering jobs
// on the customer phone key.

type Customer struct {
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	JobIDs []string `json:"job_ids"`
}

// CustomerFromJobs derives the customer view from the jobs sharing one phone
// key. Jobs are expected newest-first; the name comes from the most recent
// job card.
func CustomerFromJobs(jobs []Job) Customer {
	c := Customer{}
	if len(jobs) == 0 {
		return c
	}
	c.Name = jobs[0].CustomerName
	c.Phone = jobs[0].CustomerPhone
	c.JobIDs = make([]string, 0, len(jobs))
	for _, j := range jobs {
		c.JobIDs = append(c.JobIDs, j.ID)
	}
	return c
}

// SortJobsNewestFirst orders jobs by entry date, newest first. Used by the
// customer history view and the mechanic dashboard.
func SortJobsNewestFirst(jobs []Job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		return jobs[i].EntryDate.After(jobs[k].EntryDate)
	})
}
