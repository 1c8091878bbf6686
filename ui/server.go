package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/wouterdebie/salph/alphabet"
	"github.com/wouterdebie/salph/format"
)

//go:embed static templates
var embeddedFS embed.FS

// defaultAlphabet is used when a request names no alphabet.
const defaultAlphabet = "nato"

var log = commonlog.GetLogger("salph.ui")

type Server struct {
	staticFS   fs.FS
	templates  *template.Template
	mux        *http.ServeMux
	templateFS fs.FS
	funcMap    template.FuncMap
}

func NewServer() (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		staticFS:   staticFS,
		templates:  tmpl,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
		funcMap:    funcMap,
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("GET /spell", s.handleSpell)
	s.mux.HandleFunc("GET /alphabets", s.handleAlphabets)
	s.mux.HandleFunc("GET /alphabets/{name}", s.handleAlphabet)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Infof("%s %s", r.Method, r.URL)
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("render %s: %s", name, err.Error())
	}
}

// SpellViewData is the payload of the spell result page.
type SpellViewData struct {
	Alphabets []alphabet.Info
	Selected  string
	Name      string
	Text      string
	Results   []format.Result
}

func (s *Server) handleSpell(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("alphabet")
	if code == "" {
		code = defaultAlphabet
	}
	a, err := alphabet.Load(code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var results []format.Result
	for _, word := range strings.Fields(text) {
		results = append(results, format.Result{Input: word, Spellings: a.Spell(word)})
	}

	accept := r.Header.Get("Accept")
	if accept == "application/json" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Alphabet string          `json:"alphabet"`
			Name     string          `json:"name"`
			Text     string          `json:"text"`
			Results  []format.Result `json:"results"`
		}{
			Alphabet: code,
			Name:     a.Name(),
			Text:     text,
			Results:  results,
		})
		return
	}

	infos, err := alphabet.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, "spell.html", SpellViewData{
		Alphabets: infos,
		Selected:  code,
		Name:      a.Name(),
		Text:      text,
		Results:   results,
	})
}

func (s *Server) handleAlphabets(w http.ResponseWriter, r *http.Request) {
	infos, err := alphabet.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}

func (s *Server) handleAlphabet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	a, err := alphabet.Load(name)
	if err != nil {
		http.Error(w, "alphabet not found", http.StatusNotFound)
		return
	}

	accept := r.Header.Get("Accept")
	if accept == "application/json" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Code    string           `json:"code"`
			Name    string           `json:"name"`
			Entries []alphabet.Entry `json:"entries"`
		}{
			Code:    name,
			Name:    a.Name(),
			Entries: a.Entries(),
		})
		return
	}

	data := struct {
		Code    string
		Name    string
		Entries []alphabet.Entry
	}{
		Code:    name,
		Name:    a.Name(),
		Entries: a.Entries(),
	}
	s.render(w, "alphabet.html", data)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	infos, err := alphabet.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data := struct {
		Alphabets []alphabet.Info
		Selected  string
	}{
		Alphabets: infos,
		Selected:  defaultAlphabet,
	}
	s.render(w, "index.html", data)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
