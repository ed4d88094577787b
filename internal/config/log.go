package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/papersift-io/papersift/internal/models"
)

// WriteSessionLog writes a finished session to disk: a header with the
// session metadata followed by one line per recorded decision. The
// entry's SessionID is assigned here. Returns the log file path.
func WriteSessionLog(entry *models.SessionLog, trail []string) (string, error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return "", fmt.Errorf("failed to ensure logs dir: %w", err)
	}
	logsDir, err := GlobalLogsDir()
	if err != nil {
		return "", err
	}

	if entry.SessionID == "" {
		stamp := strings.ReplaceAll(entry.StartedAt, ":", "-")
		if stamp == "" {
			stamp = "session"
		}
		entry.SessionID = fmt.Sprintf("%s-%s", stamp, uuid.NewString()[:8])
	}

	filePath := filepath.Join(logsDir, entry.SessionID+".log")
	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "session_id: %s\n", entry.SessionID)
	fmt.Fprintf(w, "input: %s\n", entry.Input)
	fmt.Fprintf(w, "output: %s\n", entry.Output)
	fmt.Fprintf(w, "started_at: %s\n", entry.StartedAt)
	fmt.Fprintf(w, "ended_at: %s\n", entry.EndedAt)
	fmt.Fprintf(w, "status: %s\n", entry.Status)
	fmt.Fprintf(w, "decided: %d\n", entry.Decided)
	fmt.Fprintf(w, "included: %d\n", entry.Included)
	fmt.Fprintf(w, "excluded: %d\n", entry.Excluded)
	fmt.Fprintf(w, "pending: %d\n", entry.Pending)
	fmt.Fprintln(w, "---")

	for _, line := range trail {
		fmt.Fprintln(w, line)
	}

	return filePath, w.Flush()
}

// ListSessionLogs reads all session logs and returns their metadata
// (newest first).
func ListSessionLogs() ([]*models.SessionLog, error) {
	logsDir, err := GlobalLogsDir()
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(logsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []*models.SessionLog
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		entry, err := parseSessionHeader(filepath.Join(logsDir, e.Name()))
		if err != nil {
			continue
		}
		logs = append(logs, entry)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].StartedAt > logs[j].StartedAt
	})

	return logs, nil
}

// ReadSessionLog reads a specific session log and returns metadata plus
// the decision trail.
func ReadSessionLog(sessionID string) (*models.SessionLog, string, error) {
	logsDir, err := GlobalLogsDir()
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(filepath.Join(logsDir, sessionID+".log"))
	if err != nil {
		return nil, "", fmt.Errorf("session log not found: %w", err)
	}

	entry, body := parseSessionContent(string(data))
	if entry == nil {
		return nil, "", fmt.Errorf("invalid session log format")
	}
	return entry, body, nil
}

func parseSessionHeader(path string) (*models.SessionLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	entry := &models.SessionLog{}
	inHeader := false

	for scanner.Scan() {
		line := scanner.Text()
		if line == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			break
		}
		if inHeader {
			parseSessionHeaderLine(entry, line)
		}
	}

	if entry.SessionID == "" {
		entry.SessionID = strings.TrimSuffix(filepath.Base(path), ".log")
	}
	return entry, nil
}

func parseSessionContent(content string) (*models.SessionLog, string) {
	lines := strings.Split(content, "\n")
	entry := &models.SessionLog{}
	headerEnd := -1
	inHeader := false

	for i, line := range lines {
		if line == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			headerEnd = i
			break
		}
		if inHeader {
			parseSessionHeaderLine(entry, line)
		}
	}

	if headerEnd < 0 {
		return nil, ""
	}
	return entry, strings.Join(lines[headerEnd+1:], "\n")
}

func parseSessionHeaderLine(entry *models.SessionLog, line string) {
	parts := strings.SplitN(line, ": ", 2)
	if len(parts) != 2 {
		return
	}
	key := strings.TrimSpace(parts[0])
	val := strings.TrimSpace(parts[1])

	switch key {
	case "session_id":
		entry.SessionID = val
	case "input":
		entry.Input = val
	case "output":
		entry.Output = val
	case "started_at":
		entry.StartedAt = val
	case "ended_at":
		entry.EndedAt = val
	case "status":
		entry.Status = val
	case "decided":
		fmt.Sscanf(val, "%d", &entry.Decided)
	case "included":
		fmt.Sscanf(val, "%d", &entry.Included)
	case "excluded":
		fmt.Sscanf(val, "%d", &entry.Excluded)
	case "pending":
		fmt.Sscanf(val, "%d", &entry.Pending)
	}
}
