package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tubectl/pkg/domain/model"
)

func TestDefaultDownloadOptions(t *testing.T) {
	opts := model.DefaultDownloadOptions()
	gt.Equal(t, opts.DownloadType, model.DownloadTypeVideo)
	gt.Equal(t, opts.VideoFormat, model.VideoFormatMP4)
	gt.Equal(t, opts.VideoQuality, model.VideoQualityBest)
	gt.Equal(t, opts.AudioFormat, model.AudioFormatMP3)
	gt.Equal(t, opts.AudioQuality, model.AudioQuality192k)
	gt.Equal(t, opts.SubtitleLanguage, model.SubtitleLanguageEnglish)
	gt.False(t, opts.Thumbnail)
	gt.False(t, opts.Playlist)
	gt.False(t, opts.KeepOriginal)
	gt.NoError(t, opts.ValidateFields())
}

func TestDownloadType_Valid(t *testing.T) {
	tests := []struct {
		value    model.DownloadType
		expected bool
	}{
		{model.DownloadTypeVideo, true},
		{model.DownloadTypeAudio, true},
		{model.DownloadTypeSubtitles, true},
		{"bogus", false},
		{"", false},
		{"Video", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			gt.Equal(t, tt.value.Valid(), tt.expected)
		})
	}
}

func TestDownloadOptions_ValidateFields(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(o *model.DownloadOptions)
		wantErr bool
	}{
		{
			name:   "audio fields ignored for video",
			modify: func(o *model.DownloadOptions) { o.AudioFormat = "ogg" },
		},
		{
			name:    "bad video quality",
			modify:  func(o *model.DownloadOptions) { o.VideoQuality = "360" },
			wantErr: true,
		},
		{
			name:    "bad video format",
			modify:  func(o *model.DownloadOptions) { o.VideoFormat = "mkv" },
			wantErr: true,
		},
		{
			name: "bad audio format",
			modify: func(o *model.DownloadOptions) {
				o.DownloadType = model.DownloadTypeAudio
				o.AudioFormat = "ogg"
			},
			wantErr: true,
		},
		{
			name: "bad audio quality",
			modify: func(o *model.DownloadOptions) {
				o.DownloadType = model.DownloadTypeAudio
				o.AudioQuality = "320"
			},
			wantErr: true,
		},
		{
			name: "video fields ignored for subtitles",
			modify: func(o *model.DownloadOptions) {
				o.DownloadType = model.DownloadTypeSubtitles
				o.VideoFormat = "mkv"
				o.SubtitleLanguage = model.SubtitleLanguageJapanese
			},
		},
		{
			name: "unknown subtitle language",
			modify: func(o *model.DownloadOptions) {
				o.DownloadType = model.DownloadTypeSubtitles
				o.SubtitleLanguage = "pt"
			},
			wantErr: true,
		},
		{
			name:    "unknown download type",
			modify:  func(o *model.DownloadOptions) { o.DownloadType = "bogus" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := model.DefaultDownloadOptions()
			tt.modify(&opts)
			err := opts.ValidateFields()
			if tt.wantErr {
				gt.Error(t, err)
				gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
