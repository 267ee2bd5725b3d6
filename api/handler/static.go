package handler

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/valyala/fasthttp"
)

// StaticHandler serves embedded assets under /static/.
type StaticHandler struct {
	files fs.FS
}

// NewStaticHandler serves files rooted at dir inside fsys.
func NewStaticHandler(fsys fs.FS, dir string) (*StaticHandler, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, err
	}
	return &StaticHandler{files: sub}, nil
}

func (h *StaticHandler) Serve(ctx *fasthttp.RequestCtx) {
	name, _ := ctx.UserValue("filepath").(string)
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" || !fs.ValidPath(name) {
		ctx.Error(http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	body, err := fs.ReadFile(h.files, name)
	if err != nil {
		ctx.Error(http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		ctx.Response.Header.SetContentType(ct)
	}
	ctx.Response.Header.Set("Cache-Control", "public, max-age=3600")
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(body)
}
