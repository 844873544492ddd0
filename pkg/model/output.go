package model

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// WriteSchedule prints one line per track with its sessions in time slot order, papers separated
// by spaces and sessions by " | "
func WriteSchedule(writer io.Writer, schedule Schedule, config GridConfig) error {
	sessions := schedule.Sessions(config)

	for track := range config.ParallelTracks {
		trackSessions := make([]string, 0, config.SessionsPerTrack)
		for timeSlot := range config.SessionsPerTrack {
			papers := sessions[timeSlot*config.ParallelTracks+track]
			trackSessions = append(trackSessions, strings.Join(lo.Map(papers, func(paper int, _ int) string { return strconv.Itoa(paper) }), " "))
		}

		if _, err := fmt.Fprintln(writer, strings.Join(trackSessions, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// ScheduleJson is the machine readable view of a schedule: Tracks[track][timeSlot] lists the session's papers
type ScheduleJson struct {
	Score        float64   `json:"score"`
	Restarts     int       `json:"restarts"`
	Proposals    int       `json:"proposals"`
	Improvements int       `json:"improvements"`
	Tracks       [][][]int `json:"tracks"`
}

func NewScheduleJson(schedule Schedule, config GridConfig) ScheduleJson {
	sessions := schedule.Sessions(config)
	tracks := make([][][]int, config.ParallelTracks)
	for session, papers := range sessions {
		track := session % config.ParallelTracks
		tracks[track] = append(tracks[track], papers)
	}

	return ScheduleJson{
		Score:        schedule.Score,
		Restarts:     schedule.Restarts,
		Proposals:    schedule.Proposals,
		Improvements: schedule.Improvements,
		Tracks:       tracks,
	}
}
