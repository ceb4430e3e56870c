package config

import (
	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Options holds the download option flags
type Options struct {
	DownloadType     string
	VideoFormat      string
	VideoQuality     string
	AudioFormat      string
	AudioQuality     string
	SubtitleLanguage string
	Thumbnail        bool
	Playlist         bool
	KeepOriginal     bool
}

// Flags returns CLI flags for download options. Defaults match a fresh form.
func (c *Options) Flags() []cli.Flag {
	def := model.DefaultDownloadOptions()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "type",
			Usage:       "Download type (video, audio, subtitles)",
			Value:       def.DownloadType.String(),
			Destination: &c.DownloadType,
			Sources:     cli.EnvVars("TUBECTL_TYPE"),
		},
		&cli.StringFlag{
			Name:        "video-format",
			Usage:       "Video container (mp4, webm)",
			Value:       def.VideoFormat.String(),
			Destination: &c.VideoFormat,
			Sources:     cli.EnvVars("TUBECTL_VIDEO_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "video-quality",
			Usage:       "Maximum video height (best, 2160, 1440, 1080, 720, 480)",
			Value:       def.VideoQuality.String(),
			Destination: &c.VideoQuality,
			Sources:     cli.EnvVars("TUBECTL_VIDEO_QUALITY"),
		},
		&cli.StringFlag{
			Name:        "audio-format",
			Usage:       "Audio format (mp3, m4a, wav, flac)",
			Value:       def.AudioFormat.String(),
			Destination: &c.AudioFormat,
			Sources:     cli.EnvVars("TUBECTL_AUDIO_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "audio-quality",
			Usage:       "Audio quality (0 for best, 192, 128, 96)",
			Value:       def.AudioQuality.String(),
			Destination: &c.AudioQuality,
			Sources:     cli.EnvVars("TUBECTL_AUDIO_QUALITY"),
		},
		&cli.StringFlag{
			Name:        "sub-lang",
			Usage:       "Subtitle language code",
			Value:       def.SubtitleLanguage.String(),
			Destination: &c.SubtitleLanguage,
			Sources:     cli.EnvVars("TUBECTL_SUB_LANG"),
		},
		&cli.BoolFlag{
			Name:        "thumbnail",
			Usage:       "Also write the thumbnail",
			Destination: &c.Thumbnail,
			Sources:     cli.EnvVars("TUBECTL_THUMBNAIL"),
		},
		&cli.BoolFlag{
			Name:        "playlist",
			Usage:       "Download the whole playlist the URL belongs to",
			Destination: &c.Playlist,
			Sources:     cli.EnvVars("TUBECTL_PLAYLIST"),
		},
		&cli.BoolFlag{
			Name:        "keep-original",
			Usage:       "Keep the original file after post-processing",
			Destination: &c.KeepOriginal,
			Sources:     cli.EnvVars("TUBECTL_KEEP_ORIGINAL"),
		},
	}
}

// DownloadOptions converts the flags as given; values are not validated
func (c *Options) DownloadOptions() model.DownloadOptions {
	return model.DownloadOptions{
		DownloadType:     model.DownloadType(c.DownloadType),
		VideoFormat:      model.VideoFormat(c.VideoFormat),
		VideoQuality:     model.VideoQuality(c.VideoQuality),
		AudioFormat:      model.AudioFormat(c.AudioFormat),
		AudioQuality:     model.AudioQuality(c.AudioQuality),
		SubtitleLanguage: model.SubtitleLanguage(c.SubtitleLanguage),
		Thumbnail:        c.Thumbnail,
		Playlist:         c.Playlist,
		KeepOriginal:     c.KeepOriginal,
	}
}
