package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deborahgu/serialicon/internal/iconset"
)

func TestAssetETags(t *testing.T) {
	ts := httptest.NewServer(setupRouter(NewServer(iconset.DefaultConfig())))
	defer ts.Close()

	for _, path := range []string{"/icons/48.png", "/app_icon.ico", "/manifest.xml", "/app_icon_sheet.png"} {
		t.Run(path, func(t *testing.T) {
			res, err := http.Get(ts.URL + path)
			if err != nil {
				t.Fatal(err)
			}
			etag := res.Header.Get("ETag")
			res.Body.Close()

			if etag == "" {
				t.Fatal("Expected ETag header, got none")
			}

			req, _ := http.NewRequest("GET", ts.URL+path, nil)
			req.Header.Set("If-None-Match", etag)
			res2, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer res2.Body.Close()

			if res2.StatusCode != http.StatusNotModified {
				t.Errorf("Expected 304 Not Modified, got %v", res2.Status)
			}
		})
	}

	t.Run("Negative ETag Test", func(t *testing.T) {
		req, _ := http.NewRequest("GET", ts.URL+"/icons/48.png", nil)
		req.Header.Set("If-None-Match", "wrong-etag")
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Errorf("Expected 200 OK for wrong ETag, got %v", res.Status)
		}
	})

	t.Run("Stable across servers", func(t *testing.T) {
		other := httptest.NewServer(setupRouter(NewServer(iconset.DefaultConfig())))
		defer other.Close()

		a, err := http.Get(ts.URL + "/app_icon.ico")
		if err != nil {
			t.Fatal(err)
		}
		a.Body.Close()
		b, err := http.Get(other.URL + "/app_icon.ico")
		if err != nil {
			t.Fatal(err)
		}
		b.Body.Close()

		if a.Header.Get("ETag") != b.Header.Get("ETag") {
			t.Errorf("Expected identical ETags, got %s and %s", a.Header.Get("ETag"), b.Header.Get("ETag"))
		}
	})
}
