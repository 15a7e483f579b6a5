package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// downloadResult reports where a downloaded file was written.
type downloadResult struct {
	FileUUID string `json:"file_uuid"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

func (s *Server) handleDownloadFile(ctx context.Context, req *mcp.CallToolRequest, in downloadFileInput) (*mcp.CallToolResult, any, error) {
	// Validate before touching the network; the UUID may also become part
	// of the temp file name.
	if _, err := uuid.Parse(in.FileUUID); err != nil {
		return s.errorResult("download_file", fmt.Errorf("invalid file UUID %q: %w", in.FileUUID, err)), nil, nil
	}

	data, err := s.api.DownloadFile(ctx, in.FileUUID)
	if err != nil {
		return s.errorResult("download_file", err), nil, nil
	}

	f, err := os.CreateTemp("", tempPattern(in.FileUUID, in.Filename))
	if err != nil {
		return s.errorResult("download_file", fmt.Errorf("failed to create temp file: %w", err)), nil, nil
	}
	if err := writeDownload(f, data); err != nil {
		return s.errorResult("download_file", fmt.Errorf("failed to write temp file: %w", err)), nil, nil
	}

	s.logger.Debug().
		Str("uuid", in.FileUUID).
		Str("path", f.Name()).
		Int("bytes", len(data)).
		Msg("Downloaded file")

	return s.jsonResult(downloadResult{
		FileUUID: in.FileUUID,
		Path:     f.Name(),
		Size:     int64(len(data)),
	})
}

// tempPattern builds the os.CreateTemp pattern for a download. A caller
// supplied filename keeps its base name (and so its extension) at the end
// of the temp name; path components are stripped.
func tempPattern(fileUUID, filename string) string {
	if filename != "" {
		if name := filepath.Base(filename); name != "." && name != ".." && name != "/" {
			return "freelo-*-" + name
		}
	}
	return "freelo-" + fileUUID + "-*"
}

// writeDownload writes the fetched bytes to the created temp file and
// removes the file again when the write or close fails, so a failed
// download leaves no partial file behind.
func writeDownload(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return nil
}
