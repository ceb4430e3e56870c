package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

func TestArgumentList(t *testing.T) {
	args := model.ArgumentList{"-x", "--audio-format", "mp3", "--no-playlist"}

	t.Run("Has", func(t *testing.T) {
		gt.True(t, args.Has("--no-playlist"))
		gt.False(t, args.Has("--keep-video"))
	})

	t.Run("Value", func(t *testing.T) {
		v, ok := args.Value("--audio-format")
		gt.True(t, ok)
		gt.Equal(t, v, "mp3")

		_, ok = args.Value("--no-playlist")
		gt.False(t, ok)
	})

	t.Run("Index", func(t *testing.T) {
		gt.Equal(t, args.Index("-x"), 0)
		gt.Equal(t, args.Index("--sub-lang"), -1)
	})
}

func TestArgumentList_String(t *testing.T) {
	tests := []struct {
		name string
		args model.ArgumentList
		want string
	}{
		{
			name: "plain tokens",
			args: model.ArgumentList{"--write-sub", "--sub-lang", "zh-CN"},
			want: "--write-sub --sub-lang zh-CN",
		},
		{
			name: "selector is quoted",
			args: model.ArgumentList{"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]"},
			want: "-f 'bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]'",
		},
		{
			name: "comparison is quoted",
			args: model.ArgumentList{"best[height<=720]"},
			want: "'best[height<=720]'",
		},
		{
			name: "empty list",
			args: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.args.String(), tt.want)
		})
	}
}
