package usecase

import (
	"github.com/m-mizutani/tubectl/pkg/domain/model"
	"github.com/m-mizutani/tubectl/pkg/domain/ytdlp"
)

// Resolve translates options into extraction tool arguments. Branch specific flags
// come first, followed by thumbnail, playlist and keep-original flags in that order.
// Only fields of the active download type are read. Callers must reject unknown
// download types beforehand; for those only the trailing flags are emitted.
func Resolve(opts model.DownloadOptions) model.ArgumentList {
	var args model.ArgumentList

	switch opts.DownloadType {
	case model.DownloadTypeVideo:
		ext := opts.VideoFormat.String()
		if opts.VideoQuality.IsBest() {
			args = append(args, ytdlp.Format, ytdlp.BestFormatSelector(ext))
		} else {
			args = append(args, ytdlp.Format, ytdlp.CappedFormatSelector(ext, opts.VideoQuality.String()))
		}

	case model.DownloadTypeAudio:
		args = append(args,
			ytdlp.ExtractAudio,
			ytdlp.AudioFormat, opts.AudioFormat.String(),
			ytdlp.AudioQuality, opts.AudioQuality.String(),
		)

	case model.DownloadTypeSubtitles:
		args = append(args,
			ytdlp.WriteSub, ytdlp.SkipDownload,
			ytdlp.SubLang, opts.SubtitleLanguage.String(),
		)
	}

	if opts.Thumbnail {
		args = append(args, ytdlp.WriteThumbnail)
	}
	// Playlist handling is the tool's behavior unless told otherwise
	if !opts.Playlist {
		args = append(args, ytdlp.NoPlaylist)
	}
	if opts.KeepOriginal {
		args = append(args, ytdlp.KeepVideo)
	}

	return args
}
