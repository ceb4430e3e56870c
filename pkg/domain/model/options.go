package model

import "github.com/m-mizutani/goerr/v2"

// DownloadType selects which resolution branch applies
type DownloadType string

const (
	DownloadTypeVideo     DownloadType = "video"
	DownloadTypeAudio     DownloadType = "audio"
	DownloadTypeSubtitles DownloadType = "subtitles"
)

func (t DownloadType) String() string { return string(t) }

// Valid returns true if t is one of the known download types
func (t DownloadType) Valid() bool {
	switch t {
	case DownloadTypeVideo, DownloadTypeAudio, DownloadTypeSubtitles:
		return true
	default:
		return false
	}
}

// VideoFormat is the container requested for video downloads
type VideoFormat string

const (
	VideoFormatMP4  VideoFormat = "mp4"
	VideoFormatWebM VideoFormat = "webm"
)

func (f VideoFormat) String() string { return string(f) }

func (f VideoFormat) Valid() bool {
	return f == VideoFormatMP4 || f == VideoFormatWebM
}

// VideoQuality is either "best" or a maximum vertical resolution
type VideoQuality string

const (
	VideoQualityBest  VideoQuality = "best"
	VideoQuality2160p VideoQuality = "2160"
	VideoQuality1440p VideoQuality = "1440"
	VideoQuality1080p VideoQuality = "1080"
	VideoQuality720p  VideoQuality = "720"
	VideoQuality480p  VideoQuality = "480"
)

func (q VideoQuality) String() string { return string(q) }

func (q VideoQuality) Valid() bool {
	switch q {
	case VideoQualityBest, VideoQuality2160p, VideoQuality1440p,
		VideoQuality1080p, VideoQuality720p, VideoQuality480p:
		return true
	default:
		return false
	}
}

// IsBest returns true if no resolution cap applies
func (q VideoQuality) IsBest() bool { return q == VideoQualityBest }

// AudioFormat is the codec audio is extracted to
type AudioFormat string

const (
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatM4A  AudioFormat = "m4a"
	AudioFormatWAV  AudioFormat = "wav"
	AudioFormatFLAC AudioFormat = "flac"
)

func (f AudioFormat) String() string { return string(f) }

func (f AudioFormat) Valid() bool {
	switch f {
	case AudioFormatMP3, AudioFormatM4A, AudioFormatWAV, AudioFormatFLAC:
		return true
	default:
		return false
	}
}

// AudioQuality is passed verbatim to the extraction tool. "0" means best.
type AudioQuality string

const (
	AudioQualityBest AudioQuality = "0"
	AudioQuality192k AudioQuality = "192"
	AudioQuality128k AudioQuality = "128"
	AudioQuality96k  AudioQuality = "96"
)

func (q AudioQuality) String() string { return string(q) }

func (q AudioQuality) Valid() bool {
	switch q {
	case AudioQualityBest, AudioQuality192k, AudioQuality128k, AudioQuality96k:
		return true
	default:
		return false
	}
}

// SubtitleLanguage is a language code from the fixed set offered to users
type SubtitleLanguage string

const (
	SubtitleLanguageEnglish  SubtitleLanguage = "en"
	SubtitleLanguageSpanish  SubtitleLanguage = "es"
	SubtitleLanguageFrench   SubtitleLanguage = "fr"
	SubtitleLanguageGerman   SubtitleLanguage = "de"
	SubtitleLanguageItalian  SubtitleLanguage = "it"
	SubtitleLanguageJapanese SubtitleLanguage = "ja"
	SubtitleLanguageKorean   SubtitleLanguage = "ko"
	SubtitleLanguageChinese  SubtitleLanguage = "zh-CN"
)

// SubtitleLanguages lists the offered languages in display order
var SubtitleLanguages = []SubtitleLanguage{
	SubtitleLanguageEnglish,
	SubtitleLanguageSpanish,
	SubtitleLanguageFrench,
	SubtitleLanguageGerman,
	SubtitleLanguageItalian,
	SubtitleLanguageJapanese,
	SubtitleLanguageKorean,
	SubtitleLanguageChinese,
}

func (l SubtitleLanguage) String() string { return string(l) }

func (l SubtitleLanguage) Valid() bool {
	for _, v := range SubtitleLanguages {
		if l == v {
			return true
		}
	}
	return false
}

// DownloadOptions is the user's selection, snapshotted at submission time
type DownloadOptions struct {
	DownloadType     DownloadType     `json:"download_type"`
	VideoFormat      VideoFormat      `json:"video_format"`
	VideoQuality     VideoQuality     `json:"video_quality"`
	AudioFormat      AudioFormat      `json:"audio_format"`
	AudioQuality     AudioQuality     `json:"audio_quality"`
	SubtitleLanguage SubtitleLanguage `json:"subtitle_language"`
	Thumbnail        bool             `json:"thumbnail"`
	Playlist         bool             `json:"playlist"`
	KeepOriginal     bool             `json:"keep_original"`
}

// DefaultDownloadOptions returns the selection a fresh form starts with
func DefaultDownloadOptions() DownloadOptions {
	return DownloadOptions{
		DownloadType:     DownloadTypeVideo,
		VideoFormat:      VideoFormatMP4,
		VideoQuality:     VideoQualityBest,
		AudioFormat:      AudioFormatMP3,
		AudioQuality:     AudioQuality192k,
		SubtitleLanguage: SubtitleLanguageEnglish,
	}
}

// ValidateFields checks the download type and the fields of its branch.
// Fields of inactive branches are ignored.
func (o DownloadOptions) ValidateFields() error {
	switch o.DownloadType {
	case DownloadTypeVideo:
		if !o.VideoFormat.Valid() {
			return goerr.New("invalid video format", goerr.V("video_format", o.VideoFormat), goerr.T(ErrTagValidation))
		}
		if !o.VideoQuality.Valid() {
			return goerr.New("invalid video quality", goerr.V("video_quality", o.VideoQuality), goerr.T(ErrTagValidation))
		}
	case DownloadTypeAudio:
		if !o.AudioFormat.Valid() {
			return goerr.New("invalid audio format", goerr.V("audio_format", o.AudioFormat), goerr.T(ErrTagValidation))
		}
		if !o.AudioQuality.Valid() {
			return goerr.New("invalid audio quality", goerr.V("audio_quality", o.AudioQuality), goerr.T(ErrTagValidation))
		}
	case DownloadTypeSubtitles:
		if !o.SubtitleLanguage.Valid() {
			return goerr.New("invalid subtitle language", goerr.V("subtitle_language", o.SubtitleLanguage), goerr.T(ErrTagValidation))
		}
	default:
		return goerr.New("invalid download type", goerr.V("download_type", o.DownloadType), goerr.T(ErrTagValidation))
	}
	return nil
}
