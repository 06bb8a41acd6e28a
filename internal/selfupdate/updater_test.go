package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "quizbox_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "quizbox_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "quizbox_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "quizbox_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "quizbox_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "quizbox_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "quizbox_Windows_arm64.zip", false},
		{"unsupported os", "plan9", "amd64", "", true},
		{"unsupported arch", "linux", "riscv64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	t.Run("goreleaser output", func(t *testing.T) {
		sums := sha256Hex([]byte("darwin")) + "  quizbox_Darwin_all.tar.gz\n" +
			sha256Hex([]byte("linux")) + "  quizbox_Linux_x86_64.tar.gz\n" +
			sha256Hex([]byte("windows")) + "  quizbox_Windows_x86_64.zip\n"

		got := parseChecksums([]byte(sums))
		require.Len(t, got, 3)
		assert.Equal(t, sha256Hex([]byte("linux")), got["quizbox_Linux_x86_64.tar.gz"])
		assert.Equal(t, sha256Hex([]byte("windows")), got["quizbox_Windows_x86_64.zip"])
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, parseChecksums(nil))
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		got := parseChecksums([]byte("deadbeef  quizbox_Linux_arm64.tar.gz\nnot-a-checksum-line\n  \na b c\n"))
		assert.Equal(t, map[string]string{"quizbox_Linux_arm64.tar.gz": "deadbeef"}, got)
	})
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("quizbox release payload")

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyChecksum(data, sha256Hex(data)))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyChecksum(data, sha256Hex([]byte("tampered")))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("\x7fELF quizbox v2")

	t.Run("tar.gz with release extras", func(t *testing.T) {
		// goreleaser archives carry LICENSE and README next to the
		// binary; extraction must pick the binary out.
		archive := releaseTarGz(t, map[string][]byte{
			"LICENSE":   []byte("MIT"),
			"README.md": []byte("# quizbox"),
			"quizbox":   binary,
		})
		got, err := extractBinary(archive, "quizbox_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("nested directory entry", func(t *testing.T) {
		archive := releaseTarGz(t, map[string][]byte{
			"quizbox_Darwin_all/quizbox": binary,
		})
		got, err := extractBinary(archive, "quizbox_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("windows zip", func(t *testing.T) {
		archive := releaseZip(t, map[string][]byte{
			"LICENSE":     []byte("MIT"),
			"quizbox.exe": binary,
		})
		got, err := extractBinary(archive, "quizbox_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("binary absent", func(t *testing.T) {
		archive := releaseTarGz(t, map[string][]byte{"LICENSE": []byte("MIT")})
		_, err := extractBinary(archive, "quizbox_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("replaces and keeps mode", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "quizbox")
		require.NoError(t, os.WriteFile(target, []byte("v1"), 0755))

		next := []byte("v2")
		h := sha256.Sum256(next)
		require.NoError(t, applyUpdate(next, target, h[:]))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, next, got)

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	})

	t.Run("missing target", func(t *testing.T) {
		next := []byte("v2")
		h := sha256.Sum256(next)
		err := applyUpdate(next, filepath.Join(t.TempDir(), "quizbox"), h[:])
		require.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	binary := []byte("\x7fELF quizbox v2.3.0")
	archive := releaseTarGz(t, map[string][]byte{
		"LICENSE": []byte("MIT"),
		"quizbox": binary,
	})
	assetForHere, err := assetName()
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "quizbox")
		require.NoError(t, os.WriteFile(execPath, []byte("v2.2.0"), 0755))

		server := newReleaseServer(t, "v2.3.0", map[string][]byte{assetForHere: archive})
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.2.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("pinned target version skips check", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "quizbox")
		require.NoError(t, os.WriteFile(execPath, []byte("v2.2.0"), 0755))

		server := newReleaseServer(t, "v2.3.0", map[string][]byte{assetForHere: archive})
		defer server.Close()

		checker := NewChecker(
			WithBaseURL("http://127.0.0.1:0"), // check endpoint must never be hit
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{
			CurrentVersion: "v2.2.0",
			TargetVersion:  "v2.3.0",
		}, func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)
		assert.NotContains(t, stages, "check")
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := newReleaseServer(t, "v2.2.0", nil)
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.2.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("tampered archive", func(t *testing.T) {
		server := newReleaseServer(t, "v2.3.0", map[string][]byte{assetForHere: archive})
		server.checksums = sha256Hex([]byte("someone else's bytes")) + "  " + assetForHere + "\n"

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.2.0"}, func(UpdateProgress) {})
		server.Close()
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("checksum entry missing", func(t *testing.T) {
		server := newReleaseServer(t, "v2.3.0", map[string][]byte{assetForHere: archive})
		server.checksums = sha256Hex(archive) + "  quizbox_Plan9_vax.tar.gz\n"

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.2.0"}, func(UpdateProgress) {})
		server.Close()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum found")
	})

	t.Run("asset not published", func(t *testing.T) {
		server := newReleaseServer(t, "v2.3.0", nil)
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.2.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// releaseServer fakes the GitHub release API and download CDN for one
// tagged quizbox release. Checksums are computed from the assets unless
// a test overwrites them.
type releaseServer struct {
	*httptest.Server
	checksums string
}

func newReleaseServer(t *testing.T, tag string, assets map[string][]byte) *releaseServer {
	t.Helper()
	rs := &releaseServer{}
	for name, data := range assets {
		rs.checksums += sha256Hex(data) + "  " + name + "\n"
	}

	base := fmt.Sprintf("/abhisek/quizbox/releases/download/%s/", tag)
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/abhisek/quizbox/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://github.com/abhisek/quizbox/releases/tag/%s"}`, tag, tag)
		case r.URL.Path == base+"checksums.txt":
			_, _ = w.Write([]byte(rs.checksums))
		default:
			name := filepath.Base(r.URL.Path)
			if data, ok := assets[name]; ok && r.URL.Path == base+name {
				_, _ = w.Write(data)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return rs
}

func sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func releaseTarGz(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Size: int64(len(content)),
			Mode: 0755,
		}))
		_, err := tw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func releaseZip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
