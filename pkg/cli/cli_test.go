package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: nil,
			want: "-f 'bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]' --no-playlist\n",
		},
		{
			name: "audio",
			args: []string{"--type", "audio", "--audio-format", "wav", "--keep-original"},
			want: "-x --audio-format wav --audio-quality 192 --no-playlist --keep-video\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			args := append([]string{"tubectl", "resolve"}, tt.args...)
			gt.NoError(t, run(context.Background(), args, &buf))
			gt.Equal(t, buf.String(), tt.want)
		})
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, run(context.Background(), []string{"tubectl", "resolve", "--type", "subtitles", "--sub-lang", "de", "--playlist", "--json"}, &buf))

		var got []string
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		gt.Equal(t, got, []string{"--write-sub", "--skip-download", "--sub-lang", "de"})
	})

	t.Run("invalid options", func(t *testing.T) {
		var buf bytes.Buffer
		gt.Error(t, run(context.Background(), []string{"tubectl", "resolve", "--type", "video", "--video-format", "avi"}, &buf))
	})
}

func TestDownloadCommand(t *testing.T) {
	var received model.DownloadRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if received.URL == "https://www.youtube.com/watch?v=broken" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"yt-dlp exited with status 1"}`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"Download completed successfully","title":"Song","filename":"Song.mp3","duration":213}`))
	}))
	defer server.Close()

	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		err := run(context.Background(), []string{
			"tubectl", "download",
			"--backend-endpoint", server.URL,
			"--output-dir", "/srv/media",
			"--type", "audio",
			"https://www.youtube.com/watch?v=abc",
		}, &buf)
		gt.NoError(t, err)

		out := buf.String()
		gt.String(t, out).Contains("Submitting https://www.youtube.com/watch?v=abc")
		gt.String(t, out).Contains("Download completed successfully")
		gt.String(t, out).Contains("Song.mp3")
		gt.Equal(t, received.OutputDir, "/srv/media")
		gt.Equal(t, received.Options, model.ArgumentList{"-x", "--audio-format", "mp3", "--audio-quality", "192", "--no-playlist"})
	})

	t.Run("backend failure exits with error", func(t *testing.T) {
		var buf bytes.Buffer
		err := run(context.Background(), []string{
			"tubectl", "download",
			"--backend-endpoint", server.URL,
			"https://www.youtube.com/watch?v=broken",
		}, &buf)
		gt.Error(t, err)
		gt.String(t, buf.String()).Contains("Download failed: yt-dlp exited with status 1")
	})

	t.Run("missing url fails locally", func(t *testing.T) {
		var buf bytes.Buffer
		err := run(context.Background(), []string{"tubectl", "download", "--backend-endpoint", server.URL}, &buf)
		gt.Error(t, err)
		gt.String(t, buf.String()).Contains("Please enter a YouTube URL")
	})

	t.Run("endpoint from config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tubectl.toml")
		gt.NoError(t, os.WriteFile(path, []byte("[backend]\nendpoint = \""+server.URL+"\"\noutput_dir = \"from-file\"\n"), 0o600))

		var buf bytes.Buffer
		err := run(context.Background(), []string{"tubectl", "--config", path, "download", "https://www.youtube.com/watch?v=abc"}, &buf)
		gt.NoError(t, err)
		gt.Equal(t, received.OutputDir, "from-file")
	})
}

func TestDownloadCommand_RejectsInvalidOptions(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"message":"Download completed successfully"}`))
	}))
	defer server.Close()

	tests := []struct {
		name    string
		args    []string
		wantOut string
	}{
		{
			name: "video quality typo",
			args: []string{"--video-quality", "999x"},
		},
		{
			name: "audio format typo",
			args: []string{"--type", "audio", "--audio-format", "ogg"},
		},
		{
			name:    "unknown download type",
			args:    []string{"--type", "podcast"},
			wantOut: "Invalid download type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			args := append([]string{"tubectl", "download", "--backend-endpoint", server.URL}, tt.args...)
			args = append(args, "https://www.youtube.com/watch?v=abc")

			gt.Error(t, run(context.Background(), args, &buf))
			if tt.wantOut != "" {
				gt.String(t, buf.String()).Contains(tt.wantOut)
			}
		})
	}

	gt.Equal(t, calls.Load(), int32(0))
}
