package dispatch

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

type fakeResolver struct {
	files map[string]string
	calls []string
}

func (f *fakeResolver) Resolve(path string, allowed ExtensionSet) (ResolvedFile, error) {
	f.calls = append(f.calls, path)
	ext := filepath.Ext(path)
	if _, ok := f.files[path]; !ok {
		return ResolvedFile{}, &ValidationError{Kind: NotFound, Path: path, Allowed: allowed}
	}
	if !allowed.Contains(ext) {
		return ResolvedFile{}, &ValidationError{Kind: WrongExtension, Path: path, Allowed: allowed}
	}
	return ResolvedFile{Path: f.files[path], Ext: ext}, nil
}

func testEnv() Environment {
	return Environment{
		Catalog: Catalog{
			Versions: []string{"7.2.0", "7.3.1"},
			Modelers: map[string]string{
				"7.2.0": `C:\Mendix\7.2.0\modeler\Modeler.exe`,
				"7.3.1": `C:\Mendix\7.3.1\modeler\Modeler.exe`,
			},
		},
		Association: Association{Command: `"C:\Mendix\VersionSelector.exe" "%1"`},
	}
}

func testResolver() *fakeResolver {
	return &fakeResolver{files: map[string]string{
		"project.mpr": "/work/project.mpr",
		"package.mpk": "/work/package.mpk",
		"notes.txt":   "/work/notes.txt",
	}}
}

func TestDecidePlatformPreconditionWins(t *testing.T) {
	env := testEnv()
	env.Association = Association{Err: errors.New("no association for .mpr files")}

	for _, inv := range []Invocation{
		{WantsUpdate: true},
		{WantsList: true},
		{TargetFiles: []string{"project.mpr"}},
		{},
	} {
		action := Decide(inv, env, testResolver())
		f, ok := action.(Failure)
		if !ok {
			t.Fatalf("Decide(%+v) = %#v, want Failure", inv, action)
		}
		if f.Kind != KindPlatformPrecondition || f.Code != 1 {
			t.Fatalf("got kind=%s code=%d, want platform_precondition/1", f.Kind, f.Code)
		}
		if f.Message != "no association for .mpr files" {
			t.Fatalf("unexpected message %q", f.Message)
		}
	}
}

func TestDecideUpdateIgnoresEverythingElse(t *testing.T) {
	res := testResolver()
	inv := Invocation{WantsUpdate: true, WantsList: true, WantsHelp: true, ExplicitVersion: "7.3.1", TargetFiles: []string{"a.mpr", "b.mpr"}}
	action := Decide(inv, testEnv(), res)
	if _, ok := action.(UpdateCheck); !ok {
		t.Fatalf("got %#v, want UpdateCheck", action)
	}
	if len(res.calls) != 0 {
		t.Fatalf("resolver called %v", res.calls)
	}
}

func TestDecideList(t *testing.T) {
	env := testEnv()
	action := Decide(Invocation{WantsList: true, TargetFiles: []string{"a", "b", "c"}}, env, testResolver())
	list, ok := action.(ListVersions)
	if !ok {
		t.Fatalf("got %#v, want ListVersions", action)
	}
	if !reflect.DeepEqual(list.Catalog.Versions, []string{"7.2.0", "7.3.1"}) {
		t.Fatalf("unexpected versions %v", list.Catalog.Versions)
	}
	if list.ExitCode() != 0 {
		t.Fatalf("exit code = %d, want 0", list.ExitCode())
	}
}

func TestDecideCatalogErrorSurfaces(t *testing.T) {
	env := testEnv()
	env.Catalog = Catalog{Err: errors.New("cannot read install roots")}

	for name, inv := range map[string]Invocation{
		"list":    {WantsList: true},
		"version": {ExplicitVersion: "7.3.1", TargetFiles: []string{"project.mpr"}},
	} {
		t.Run(name, func(t *testing.T) {
			res := testResolver()
			f, ok := Decide(inv, env, res).(Failure)
			if !ok {
				t.Fatal("expected Failure")
			}
			if f.Kind != KindCatalogUnavailable || f.Code != 1 {
				t.Fatalf("got kind=%s code=%d", f.Kind, f.Code)
			}
			if f.Message != "cannot read install roots" {
				t.Fatalf("unexpected message %q", f.Message)
			}
			if len(res.calls) != 0 {
				t.Fatalf("resolver called %v", res.calls)
			}
		})
	}
}

func TestDecideMultipleFilesIsHelp(t *testing.T) {
	invs := []Invocation{
		{TargetFiles: []string{"a.mpr", "b.mpr"}},
		{WantsCheck: true, TargetFiles: []string{"a.mpr", "b.mpr"}},
		{ExplicitVersion: "7.3.1", TargetFiles: []string{"project.mpr", "package.mpk"}},
		{TargetFiles: []string{"project.mpr", "package.mpk", "notes.txt"}},
	}
	for _, inv := range invs {
		res := testResolver()
		action := Decide(inv, testEnv(), res)
		if _, ok := action.(Help); !ok {
			t.Fatalf("Decide(%+v) = %#v, want Help", inv, action)
		}
		if action.ExitCode() != 0 {
			t.Fatalf("exit code = %d, want 0", action.ExitCode())
		}
		if len(res.calls) != 0 {
			t.Fatalf("resolver called %v", res.calls)
		}
	}
}

func TestDecideHelpFlag(t *testing.T) {
	action := Decide(Invocation{WantsHelp: true, TargetFiles: []string{"project.mpr"}}, testEnv(), testResolver())
	if _, ok := action.(Help); !ok {
		t.Fatalf("got %#v, want Help", action)
	}
}

func TestDecideRunWithVersion(t *testing.T) {
	action := Decide(Invocation{ExplicitVersion: "7.3.1", TargetFiles: []string{"project.mpr"}}, testEnv(), testResolver())
	run, ok := action.(RunWithVersion)
	if !ok {
		t.Fatalf("got %#v, want RunWithVersion", action)
	}
	if run.Version != "7.3.1" {
		t.Fatalf("version = %q", run.Version)
	}
	if run.InstallPath != `C:\Mendix\7.3.1\modeler\Modeler.exe` {
		t.Fatalf("install path = %q", run.InstallPath)
	}
	if run.File == nil || run.File.Path != "/work/project.mpr" {
		t.Fatalf("file = %#v", run.File)
	}
}

func TestDecideRunWithVersionNoFile(t *testing.T) {
	action := Decide(Invocation{ExplicitVersion: "7.2.0"}, testEnv(), testResolver())
	run, ok := action.(RunWithVersion)
	if !ok {
		t.Fatalf("got %#v, want RunWithVersion", action)
	}
	if run.File != nil {
		t.Fatalf("expected no file, got %#v", run.File)
	}
}

func TestDecideRunWithVersionAcceptsPackage(t *testing.T) {
	action := Decide(Invocation{ExplicitVersion: "7.2.0", TargetFiles: []string{"package.mpk"}}, testEnv(), testResolver())
	run, ok := action.(RunWithVersion)
	if !ok || run.File == nil || run.File.Ext != ".mpk" {
		t.Fatalf("got %#v", action)
	}
}

func TestDecideVersionNotFoundExitsZero(t *testing.T) {
	res := testResolver()
	action := Decide(Invocation{ExplicitVersion: "9.9.9", TargetFiles: []string{"project.mpr"}}, testEnv(), res)
	f, ok := action.(Failure)
	if !ok {
		t.Fatalf("got %#v, want Failure", action)
	}
	if f.Kind != KindVersionNotFound {
		t.Fatalf("kind = %s", f.Kind)
	}
	if f.Message != "cannot find specified version: 9.9.9" {
		t.Fatalf("message = %q", f.Message)
	}
	if f.ExitCode() != 0 {
		t.Fatalf("exit code = %d, want 0", f.ExitCode())
	}
	if len(res.calls) != 0 {
		t.Fatalf("file validated: %v", res.calls)
	}
}

func TestDecideVersionFileInvalid(t *testing.T) {
	tests := []struct {
		file string
		kind ErrorKind
	}{
		{"missing.mpr", KindFileNotFound},
		{"notes.txt", KindWrongExtension},
	}
	for _, tt := range tests {
		f, ok := Decide(Invocation{ExplicitVersion: "7.3.1", TargetFiles: []string{tt.file}}, testEnv(), testResolver()).(Failure)
		if !ok {
			t.Fatalf("%s: expected Failure", tt.file)
		}
		if f.Kind != tt.kind || f.Code != 1 {
			t.Fatalf("%s: got kind=%s code=%d, want %s/1", tt.file, f.Kind, f.Code, tt.kind)
		}
	}
}

func TestDecideCheck(t *testing.T) {
	action := Decide(Invocation{WantsCheck: true, TargetFiles: []string{"project.mpr"}}, testEnv(), testResolver())
	check, ok := action.(CheckFile)
	if !ok {
		t.Fatalf("got %#v, want CheckFile", action)
	}
	if check.File.Path != "/work/project.mpr" {
		t.Fatalf("path = %q", check.File.Path)
	}
}

func TestDecideCheckRejectsPackage(t *testing.T) {
	f, ok := Decide(Invocation{WantsCheck: true, TargetFiles: []string{"package.mpk"}}, testEnv(), testResolver()).(Failure)
	if !ok {
		t.Fatal("expected Failure")
	}
	if f.Kind != KindWrongExtension || f.Code != 1 {
		t.Fatalf("got kind=%s code=%d", f.Kind, f.Code)
	}
}

func TestDecideCheckMissingFile(t *testing.T) {
	f, ok := Decide(Invocation{WantsCheck: true, TargetFiles: []string{"missing.mpr"}}, testEnv(), testResolver()).(Failure)
	if !ok {
		t.Fatal("expected Failure")
	}
	if f.Kind != KindFileNotFound || f.Code != 1 {
		t.Fatalf("got kind=%s code=%d", f.Kind, f.Code)
	}
}

func TestDecideCheckWithoutFileIsHelp(t *testing.T) {
	action := Decide(Invocation{WantsCheck: true}, testEnv(), testResolver())
	if _, ok := action.(Help); !ok {
		t.Fatalf("got %#v, want Help", action)
	}
}

func TestDecideRunDefault(t *testing.T) {
	env := testEnv()
	action := Decide(Invocation{TargetFiles: []string{"package.mpk"}}, env, testResolver())
	run, ok := action.(RunDefault)
	if !ok {
		t.Fatalf("got %#v, want RunDefault", action)
	}
	if run.Command != env.Association.Command {
		t.Fatalf("command = %q", run.Command)
	}
	if run.File.Path != "/work/package.mpk" {
		t.Fatalf("path = %q", run.File.Path)
	}
}

func TestDecideRunDefaultInvalidFile(t *testing.T) {
	f, ok := Decide(Invocation{TargetFiles: []string{"notes.txt"}}, testEnv(), testResolver()).(Failure)
	if !ok {
		t.Fatal("expected Failure")
	}
	if f.Kind != KindWrongExtension || f.Code != 1 {
		t.Fatalf("got kind=%s code=%d", f.Kind, f.Code)
	}
}

func TestDecideNothingIsHelp(t *testing.T) {
	action := Decide(Invocation{}, testEnv(), testResolver())
	if _, ok := action.(Help); !ok {
		t.Fatalf("got %#v, want Help", action)
	}
}
