package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/lookup"
	"github.com/thoreinstein/namecheck/internal/platform"
)

type checker func(ctx context.Context, s *session, username string) lookup.Record

var checkers = map[platform.ID]checker{
	platform.Twitter:   checkTwitter,
	platform.Instagram: checkInstagram,
	platform.Reddit:    checkReddit,
}

func statusMessage(code int) string { return "status:" + strconv.Itoa(code) }

type twitterResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
	Msg    string `json:"msg"`
}

func checkTwitter(ctx context.Context, s *session, username string) lookup.Record {
	u := s.endpoint(platform.Twitter) + "/i/users/username_available.json?" +
		url.Values{"username": {username}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return unknown("request")
	}
	return s.do(ctx, req, func(resp *http.Response) lookup.Record {
		if resp.StatusCode != http.StatusOK {
			return unknown(statusMessage(resp.StatusCode))
		}
		var body twitterResponse
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
			return unknown("decode")
		}
		switch {
		case body.Valid:
			return known(true)
		case body.Reason == "taken":
			return known(false)
		case body.Msg != "":
			return unknown(body.Msg)
		default:
			return unknown(body.Reason)
		}
	})
}

func checkReddit(ctx context.Context, s *session, username string) lookup.Record {
	u := s.endpoint(platform.Reddit) + "/api/username_available.json?" +
		url.Values{"user": {username}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return unknown("request")
	}
	return s.do(ctx, req, func(resp *http.Response) lookup.Record {
		if resp.StatusCode != http.StatusOK {
			return unknown(statusMessage(resp.StatusCode))
		}
		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return unknown("read")
		}
		switch strings.TrimSpace(string(raw)) {
		case "true":
			return known(true)
		case "false":
			return known(false)
		default:
			return unknown("unexpected response")
		}
	})
}

const (
	instagramSignupPath  = "/accounts/emailsignup/"
	instagramAttemptPath = "/accounts/web_create_ajax/attempt/"
	instagramCSRFCookie  = "csrftoken"
)

// Username error codes meaning the handle belongs to someone.
var instagramTakenCodes = map[string]bool{
	"username_is_taken":       true,
	"username_held_by_others": true,
}

type instagramAttempt struct {
	Errors struct {
		Username []struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"username"`
	} `json:"errors"`
}

// bootstrapInstagram loads the signup page so the jar receives a CSRF
// token, which every attempt request must echo back.
func (s *session) bootstrapInstagram(ctx context.Context) error {
	base := s.endpoint(platform.Instagram)
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+instagramSignupPath, nil)
	if err != nil {
		return errors.Wrap(err, "building signup request")
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	resp, err := s.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "loading signup page")
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Newf("signup page returned %d", resp.StatusCode)
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return errors.Wrap(err, "parsing instagram endpoint")
	}
	for _, ck := range s.http.Jar.Cookies(baseURL) {
		if ck.Name == instagramCSRFCookie && ck.Value != "" {
			s.csrf = ck.Value
			return nil
		}
	}
	return errors.New("no csrf token issued")
}

func checkInstagram(ctx context.Context, s *session, username string) lookup.Record {
	base := s.endpoint(platform.Instagram)
	form := url.Values{
		"email":            {""},
		"username":         {username},
		"first_name":       {""},
		"opt_into_one_tap": {"false"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+instagramAttemptPath, strings.NewReader(form.Encode()))
	if err != nil {
		return unknown("request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRFToken", s.csrf)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Referer", base+instagramSignupPath)

	return s.do(ctx, req, func(resp *http.Response) lookup.Record {
		if resp.StatusCode != http.StatusOK {
			return unknown(statusMessage(resp.StatusCode))
		}
		var body instagramAttempt
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
			return unknown("decode")
		}
		for _, e := range body.Errors.Username {
			if instagramTakenCodes[e.Code] {
				return known(false)
			}
		}
		if len(body.Errors.Username) > 0 {
			first := body.Errors.Username[0]
			if first.Message != "" {
				return unknown(first.Message)
			}
			return unknown(first.Code)
		}
		return known(true)
	})
}
