package load

import (
	"encoding/json"
	"fmt"
	"os"

	"adeval/internal/adevent"
)

type generatedItem struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
	Text        string `json:"text"`
}

type generatedFile struct {
	AudioDescriptions []generatedItem `json:"audio_descriptions"`
}

// Generated reads a generated AD track from a JSON file shaped like
// {"audio_descriptions": [{"start_time", "end_time", "description"}]}.
// Timestamps may be "MM:SS.ms", "HH:MM:SS", or plain seconds. Events come
// back sorted by start time with indices assigned after the sort.
func Generated(path string) ([]adevent.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read generated ad: %w", err)
	}

	var file generatedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse generated ad: %w", err)
	}

	events := make([]adevent.Event, 0, len(file.AudioDescriptions))
	for i, item := range file.AudioDescriptions {
		start, err := adevent.ParseTimestamp(item.StartTime)
		if err != nil {
			return nil, fmt.Errorf("entry %d start: %w", i, err)
		}
		end, err := adevent.ParseTimestamp(item.EndTime)
		if err != nil {
			return nil, fmt.Errorf("entry %d end: %w", i, err)
		}
		text := item.Description
		if text == "" {
			text = item.Text
		}
		events = append(events, adevent.Event{Start: start, End: end, Text: text})
	}

	events = adevent.SortByStart(events)
	for i := range events {
		events[i].Index = i
	}
	return events, nil
}
