package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_HTMLDefault(t *testing.T) {
	out, err := run(t, "render")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("output does not start with doctype: %.40q", out)
	}
	if !strings.Contains(out, "<h2>Models and Pricing</h2>") {
		t.Error("missing pricing heading")
	}
}

func TestRender_JSONChinese(t *testing.T) {
	out, err := run(t, "render", "--format", "json", "--lang", "zh")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var doc struct {
		Lang   string `json:"lang"`
		Blocks []struct {
			Text string `json:"text"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Lang != "zh" {
		t.Errorf("lang = %q", doc.Lang)
	}
	if doc.Blocks[0].Text != "使用方式" {
		t.Errorf("first heading = %q", doc.Blocks[0].Text)
	}
}

func TestRender_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	out, err := run(t, "render", "-o", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty, got %d bytes", len(out))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(data, []byte(`data-row-key="7"`)) {
		t.Error("file missing last pricing row")
	}
}

func TestRender_BadFlags(t *testing.T) {
	if _, err := run(t, "render", "--format", "pdf"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := run(t, "render", "--lang", "fr"); err == nil {
		t.Error("expected error for unknown locale")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "homepagectl dev") {
		t.Errorf("version output = %q", out)
	}
}
