package ytdlp

import "fmt"

// Format selection
const (
	Format = "-f"

	// BestAudioExt is the audio container paired with every video selector
	BestAudioExt = "m4a"
)

// Audio extraction
const (
	ExtractAudio = "-x"
	AudioFormat  = "--audio-format"
	AudioQuality = "--audio-quality"
)

// Subtitles
const (
	WriteSub     = "--write-sub"
	SkipDownload = "--skip-download"
	SubLang      = "--sub-lang"
)

// Auxiliary artifacts
const (
	WriteThumbnail = "--write-thumbnail"
	NoPlaylist     = "--no-playlist"
	KeepVideo      = "--keep-video"
)

// BestFormatSelector picks the best video stream in ext plus the best m4a audio,
// falling back to the best combined stream in ext.
func BestFormatSelector(ext string) string {
	return fmt.Sprintf("bestvideo[ext=%[1]s]+bestaudio[ext=%[2]s]/best[ext=%[1]s]", ext, BestAudioExt)
}

// CappedFormatSelector is BestFormatSelector bounded to streams no taller than height.
func CappedFormatSelector(ext, height string) string {
	return fmt.Sprintf("bestvideo[height<=%[2]s][ext=%[1]s]+bestaudio[ext=%[3]s]/best[height<=%[2]s][ext=%[1]s]",
		ext, height, BestAudioExt)
}
