package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"studio/pkg/zip"
)

func (a *App) ResultGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := a.Store.Get(id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

// ResultZip packages a stored result set's images into a zip download.
func (a *App) ResultZip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := a.Store.Get(id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if len(res.ImageURLs) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "result has no images")
		return
	}

	assets := make([]zip.Asset, 0, len(res.ImageURLs))
	for i, url := range res.ImageURLs {
		mime, data, err := decodeDataURL(url)
		if err != nil {
			continue
		}
		assets = append(assets, zip.Asset{
			Filename: fmt.Sprintf("%s-%02d%s", res.Feature, i+1, zip.ExtensionForMIME(mime)),
			MIME:     mime,
			Data:     data,
		})
	}
	if len(assets) == 0 {
		a.error(w, http.StatusInternalServerError, "internal", "stored images could not be decoded")
		return
	}

	archive := zip.ArchiveAssets(assets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Feature+"-"+id+".zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func decodeDataURL(url string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data url")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data url")
	}
	mime := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mime, data, nil
}
