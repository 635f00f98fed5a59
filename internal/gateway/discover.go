package gateway

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrInputMissing reports that no file was found for a required input role.
var ErrInputMissing = errors.New("input missing")

// PaytronixFiles are the inputs of the gift-card pipeline.
type PaytronixFiles struct {
	Chase   string
	Payouts string
	Stored  []string
}

// UberFiles are the inputs of the UberEats pipeline.
type UberFiles struct {
	Payouts string
	Toast   string
}

type candidate struct {
	path    string
	name    string
	modTime time.Time
}

func listCSV(dir string) ([]candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory %s: %w", dir, err)
	}
	var out []candidate
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", e.Name(), err)
		}
		out = append(out, candidate{
			path:    filepath.Join(dir, e.Name()),
			name:    strings.ToLower(e.Name()),
			modTime: info.ModTime(),
		})
	}
	// Newest first so that single-file roles pick the latest export.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].modTime.Equal(out[j].modTime) {
			return out[i].modTime.After(out[j].modTime)
		}
		return out[i].name < out[j].name
	})
	return out, nil
}

func newest(files []candidate, role string, match func(name string) bool) (string, error) {
	for _, f := range files {
		if match(f.name) {
			return f.path, nil
		}
	}
	return "", fmt.Errorf("%w: no %s file", ErrInputMissing, role)
}

func isChase(name string) bool {
	return strings.HasPrefix(name, "chase")
}

func isPayouts(name string) bool {
	return strings.HasPrefix(name, "payouts")
}

func isStored(name string) bool {
	return strings.Contains(name, "stored")
}

func isToast(name string) bool {
	return strings.HasPrefix(name, "order")
}

// artifactPrefixes are the lower-cased names of files this tool writes. They
// can sit next to the inputs when -in and -out share a directory.
var artifactPrefixes = []string{"ue_payoutimport_", "px_", "achb_", "ap_invoices_", "maduropx_"}

func isArtifact(name string) bool {
	for _, prefix := range artifactPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// DiscoverPaytronix finds the bank log, payout register and every Stored
// Value report in dir.
func DiscoverPaytronix(dir string) (PaytronixFiles, error) {
	files, err := listCSV(dir)
	if err != nil {
		return PaytronixFiles{}, err
	}

	var out PaytronixFiles
	if out.Chase, err = newest(files, "Chase bank log", isChase); err != nil {
		return PaytronixFiles{}, err
	}
	if out.Payouts, err = newest(files, "Payouts register", isPayouts); err != nil {
		return PaytronixFiles{}, err
	}
	for _, f := range files {
		if isStored(f.name) {
			out.Stored = append(out.Stored, f.path)
		}
	}
	if len(out.Stored) == 0 {
		return PaytronixFiles{}, fmt.Errorf("%w: no Stored Value report", ErrInputMissing)
	}
	sort.Strings(out.Stored)
	return out, nil
}

// DiscoverUber finds the Toast order export and the UberEats payout detail,
// which is the newest CSV not claimed by any other role and not written by a
// previous run.
func DiscoverUber(dir string) (UberFiles, error) {
	files, err := listCSV(dir)
	if err != nil {
		return UberFiles{}, err
	}

	var out UberFiles
	if out.Toast, err = newest(files, "Toast order", isToast); err != nil {
		return UberFiles{}, err
	}
	out.Payouts, err = newest(files, "UberEats payout", func(name string) bool {
		return !isToast(name) && !isChase(name) && !isPayouts(name) && !isStored(name) && !isArtifact(name)
	})
	if err != nil {
		return UberFiles{}, err
	}
	return out, nil
}
