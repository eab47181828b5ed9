package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// AudioInfo holds probed metadata for an uploaded listening recording.
type AudioInfo struct {
	Duration float64 `json:"duration"` // seconds
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
}

// GetAudioInfo probes a local audio file with ffprobe.
func GetAudioInfo(audioPath string) (*AudioInfo, error) {
	fileInfo, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("audio file not found: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to probe audio: %v", err)
	}

	var result struct {
		Format struct {
			Duration string `json:"duration"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("failed to parse audio metadata: %v", err)
	}

	duration, _ := strconv.ParseFloat(result.Format.Duration, 64)

	return &AudioInfo{
		Duration: duration,
		Format:   result.Format.Format,
		Size:     fileInfo.Size(),
	}, nil
}
