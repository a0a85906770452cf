package models

type ViewMode string

const ViewBoard ViewMode = "BOARD"
const ViewList ViewMode = "LIST"
const ViewCalendar ViewMode = "CALENDAR"
const ViewPriority ViewMode = "PRIORITY"
const ViewTimeline ViewMode = "TIMELINE"

type TimelineScale string

const ScaleMonth TimelineScale = "MONTH"
const ScaleWeek TimelineScale = "WEEK"
const ScaleDay TimelineScale = "DAY"

func (v ViewMode) Valid() bool {
	switch v {
	case ViewBoard, ViewList, ViewCalendar, ViewPriority, ViewTimeline:
		return true
	}
	return false
}

func (s TimelineScale) Valid() bool {
	return s == ScaleMonth || s == ScaleWeek || s == ScaleDay
}
