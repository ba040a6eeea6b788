package handler

import "sync"

// MockHandlerLogger records log messages for handler package tests.
type MockHandlerLogger struct {
	mu       sync.Mutex
	messages []string
	fields   [][]interface{}
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) record(level, msg string, fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, level+": "+msg)
	l.fields = append(l.fields, fields)
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{}) { l.record("INFO", msg, fields) }
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.record("ERROR", msg, append([]interface{}{"error", err}, fields...))
}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) { l.record("DEBUG", msg, fields) }
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})  { l.record("WARN", msg, fields) }

func (l *MockHandlerLogger) last() (string, []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.messages) == 0 {
		return "", nil
	}
	return l.messages[len(l.messages)-1], l.fields[len(l.fields)-1]
}
