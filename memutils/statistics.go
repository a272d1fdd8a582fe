package memutils

import (
	"math"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Statistics summarizes the occupancy of a single slot or byte region: a descriptor table or
// the staging memory ring
type Statistics struct {
	Capacity        int
	InUse           int
	AllocationCount int
	WaitCount       int
	SyncCount       int
}

func (s *Statistics) Clear() {
	s.Capacity = 0
	s.InUse = 0
	s.AllocationCount = 0
	s.WaitCount = 0
	s.SyncCount = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.Capacity += other.Capacity
	s.InUse += other.InUse
	s.AllocationCount += other.AllocationCount
	s.WaitCount += other.WaitCount
	s.SyncCount += other.SyncCount
}

func (s *Statistics) PrintJson(json *jwriter.ObjectState) {
	json.Name("Capacity").Int(s.Capacity)
	json.Name("InUse").Int(s.InUse)
	json.Name("AllocationCount").Int(s.AllocationCount)
	json.Name("WaitCount").Int(s.WaitCount)
	json.Name("SyncCount").Int(s.SyncCount)
}

type DetailedStatistics struct {
	Statistics
	GrowCount         int
	AllocationSizeMin int
	AllocationSizeMax int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.GrowCount = 0
	s.AllocationSizeMin = math.MaxInt
	s.AllocationSizeMax = 0
}

func (s *DetailedStatistics) AddAllocation(size int) {
	s.AllocationCount++

	if size < s.AllocationSizeMin {
		s.AllocationSizeMin = size
	}

	if size > s.AllocationSizeMax {
		s.AllocationSizeMax = size
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.GrowCount += other.GrowCount

	if other.AllocationSizeMin < s.AllocationSizeMin {
		s.AllocationSizeMin = other.AllocationSizeMin
	}

	if other.AllocationSizeMax > s.AllocationSizeMax {
		s.AllocationSizeMax = other.AllocationSizeMax
	}
}

func (s *DetailedStatistics) PrintJson(json *jwriter.ObjectState) {
	s.Statistics.PrintJson(json)
	json.Name("GrowCount").Int(s.GrowCount)
	if s.AllocationCount > 0 {
		json.Name("AllocationSizeMin").Int(s.AllocationSizeMin)
		json.Name("AllocationSizeMax").Int(s.AllocationSizeMax)
	}
}
