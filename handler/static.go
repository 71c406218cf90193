package handler

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const indexFile = "index.html"

type StaticHandlerParams struct {
	fx.In

	Config Config
	Log    *zap.Logger
}

func NewStaticHandler(params StaticHandlerParams) *StaticHandler {
	return NewStaticHandlerFS(os.DirFS(params.Config.PublicDir), params.Log)
}

func NewStaticHandlerFS(fsys fs.FS, log *zap.Logger) *StaticHandler {
	return &StaticHandler{
		fsys: fsys,
		log:  log,
	}
}

// StaticHandler serves files from a file system. Directories are
// served through their index.html, never listed. Dotfiles and
// methods other than GET and HEAD are answered with 404.
type StaticHandler struct {
	fsys fs.FS
	log  *zap.Logger
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	urlPath := r.URL.Path
	if !strings.HasPrefix(urlPath, "/") {
		urlPath = "/" + urlPath
	}

	// cleaning a rooted path drops every "..", so the
	// resolved name can never leave the file system root
	cleaned := path.Clean(urlPath)

	name := strings.TrimPrefix(cleaned, "/")
	if name == "" {
		name = "."
	}

	if isHidden(name) {
		http.NotFound(w, r)
		return
	}

	file, info, err := h.open(name)
	if err != nil {
		h.notFound(w, r, err)
		return
	}

	if info.IsDir() {
		file.Close()

		if !strings.HasSuffix(urlPath, "/") {
			target := strings.TrimSuffix(cleaned, "/") + "/"
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}

		file, info, err = h.open(path.Join(name, indexFile))
		if err != nil {
			h.notFound(w, r, err)
			return
		}

		if info.IsDir() {
			file.Close()
			http.NotFound(w, r)
			return
		}
	}
	defer file.Close()

	content, err := readSeeker(file)
	if err != nil {
		h.log.Error("failed to read file",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
}

func (h *StaticHandler) open(name string) (fs.File, fs.FileInfo, error) {
	file, err := h.fsys.Open(name)
	if err != nil {
		return nil, nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	return file, info, nil
}

func (h *StaticHandler) notFound(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, fs.ErrNotExist) {
		h.log.Debug("failed to open file",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	http.NotFound(w, r)
}

// isHidden reports whether any segment of name is a dotfile.
func isHidden(name string) bool {
	if name == "." {
		return false
	}

	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}

	return false
}

func readSeeker(file fs.File) (io.ReadSeeker, error) {
	if rs, ok := file.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}
