package media

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"ad_tracker/internal/domain"
)

// Candidates are media origin URLs pulled out of an ad's raw payload,
// de-duplicated, in payload order.
type Candidates struct {
	Images []string
	Videos []string
}

var urlPattern = regexp.MustCompile(`https://[^\s"'\\<>]+`)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

var videoExts = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".m4v":  true,
}

// CDN host fragments the ad library serves media from. Extension
// heuristics win; these only classify extension-less URLs.
var imageHostHints = []string{"scontent", "fbcdn", "cdninstagram"}
var videoHostHints = []string{"video.", "video-"}

// ExtractCandidates scans the raw payload for secure media URLs. The
// payload is treated as text, not parsed: media references sit at varying
// depths of the remote document and their surrounding structure changes
// between ad types, while the URL shapes themselves are stable.
func ExtractCandidates(raw domain.RawContent) Candidates {
	// JSON encoders escape slashes inside the payload
	text := strings.ReplaceAll(string(raw), `\/`, "/")

	var out Candidates
	seen := make(map[string]struct{})

	for _, match := range urlPattern.FindAllString(text, -1) {
		candidate := strings.TrimRight(match, ",.;)")

		parsed, err := url.Parse(candidate)
		if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}

		switch classify(parsed) {
		case domain.MediaKindImage:
			out.Images = append(out.Images, candidate)
		case domain.MediaKindVideo:
			out.Videos = append(out.Videos, candidate)
		}
	}

	return out
}

func classify(u *url.URL) domain.MediaKind {
	ext := strings.ToLower(path.Ext(u.Path))
	switch {
	case imageExts[ext]:
		return domain.MediaKindImage
	case videoExts[ext]:
		return domain.MediaKindVideo
	}

	host := strings.ToLower(u.Host)
	for _, hint := range videoHostHints {
		if strings.Contains(host, hint) {
			return domain.MediaKindVideo
		}
	}
	for _, hint := range imageHostHints {
		if strings.Contains(host, hint) {
			return domain.MediaKindImage
		}
	}
	return ""
}
