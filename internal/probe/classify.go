package probe

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/thoreinstein/namecheck/internal/platform"
	"github.com/thoreinstein/namecheck/internal/status"
)

// telegramPhotoMarker is only rendered on pages of claimed handles.
var telegramPhotoMarker = []byte(`<div class="tgme_page_photo">`)

type classifier func(resp *http.Response, handle string, maxBody int64) status.Status

type rule struct {
	method   string
	follow   bool
	classify classifier
}

var rules = map[platform.ID]rule{
	platform.GitHub:   {method: http.MethodHead, follow: false, classify: classifyGitHub},
	platform.YouTube:  {method: http.MethodGet, follow: true, classify: classifyYouTube},
	platform.Telegram: {method: http.MethodGet, follow: true, classify: classifyTelegram},
	platform.Snapchat: {method: http.MethodGet, follow: true, classify: classifySnapchat},
}

// A redirect means the profile exists, so only 404 is available.
func classifyGitHub(resp *http.Response, _ string, _ int64) status.Status {
	if resp.StatusCode == http.StatusNotFound {
		return status.Available()
	}
	return status.Taken()
}

// Unknown handles redirect to a generic page. Any status other than 200
// is treated as not found, which conflates "absent" with "unclassifiable".
// Only an @handle path segment counts; the bare handle may appear in a
// search path.
func classifyYouTube(resp *http.Response, handle string, _ int64) status.Status {
	if resp.StatusCode != http.StatusOK {
		return status.Available()
	}
	for seg := range strings.SplitSeq(finalPath(resp), "/") {
		if seg == "@"+handle {
			return status.Taken()
		}
	}
	return status.Available()
}

// Unclaimed handles still render a 200 page, without a profile photo.
func classifyTelegram(resp *http.Response, _ string, maxBody int64) status.Status {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return status.Available()
	case http.StatusOK:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
		if err != nil {
			return ClassifyError(err)
		}
		if bytes.Contains(body, telegramPhotoMarker) {
			return status.Taken()
		}
		return status.Available()
	default:
		return status.HTTPStatus(resp.StatusCode)
	}
}

// Unknown handles redirect away from /add/<handle>. Any status other than
// 200 is treated as not found.
func classifySnapchat(resp *http.Response, handle string, _ int64) status.Status {
	if resp.StatusCode == http.StatusOK &&
		strings.HasSuffix(strings.TrimRight(finalPath(resp), "/"), "/add/"+handle) {
		return status.Taken()
	}
	return status.Available()
}

// finalPath is the lower-cased path of the last request in the redirect chain.
func finalPath(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return strings.ToLower(resp.Request.URL.Path)
}
