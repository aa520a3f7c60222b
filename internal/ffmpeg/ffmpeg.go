// Package ffmpeg probes videos and grabs thumbnail frames with the ffmpeg binaries.
package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// VideoMeta falls back to 1 for every field the probe can not read.
type VideoMeta struct {
	Duration int
	Width    int
	Height   int
}

// Runner executes a binary and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

//go:generate mockgen -source=ffmpeg.go -destination=../../mocks/ffmpeg/ffmpeg.go -package=mocks
type IFFmpeg interface {
	Probe(ctx context.Context, path string) VideoMeta
	GenThumbnail(ctx context.Context, path string, at time.Duration, out string) error
}

type FFmpeg struct {
	run Runner
}

var _ IFFmpeg = (*FFmpeg)(nil)

func (f *FFmpeg) Probe(ctx context.Context, path string) VideoMeta {
	meta := VideoMeta{Duration: 1, Width: 1, Height: 1}
	out, err := f.run(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height:format=duration",
		"-of", "default=noprint_wrappers=1",
		path,
	)
	if err != nil {
		return meta
	}
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		key, val, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok {
			continue
		}
		switch key {
		case "duration":
			if d, err := strconv.ParseFloat(val, 64); err == nil && d >= 1 {
				meta.Duration = int(math.Round(d))
			}
		case "width":
			if w, err := strconv.Atoi(val); err == nil && w > 0 {
				meta.Width = w
			}
		case "height":
			if h, err := strconv.Atoi(val); err == nil && h > 0 {
				meta.Height = h
			}
		}
	}
	return meta
}

func (f *FFmpeg) GenThumbnail(ctx context.Context, path string, at time.Duration, out string) error {
	if _, err := f.run(ctx, "ffmpeg", "-ss", Timestamp(at), "-i", path, "-frames:v", "1", out, "-y"); err != nil {
		return fmt.Errorf("error execution: %w", err)
	}
	return nil
}

// Timestamp renders d as hh:mm:ss.
func Timestamp(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s exited: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// NewFFmpeg uses the binaries on PATH when run is nil.
func NewFFmpeg(run Runner) *FFmpeg {
	if run == nil {
		run = execRunner
	}
	return &FFmpeg{run: run}
}
