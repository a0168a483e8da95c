package figskema

import (
	"errors"
	"io"

	eng "github.com/reoring/figskema/internal/engine"
)

// ReadValue consumes one complete JSON value from src and returns it as a raw
// tree: map[string]any, []any, string, json.Number, bool or nil. Failures are
// returned as Issues.
func ReadValue(src Source) (any, error) {
	v, err := eng.DecodeAnyFromSource(EngineTokenSource(src))
	if err != nil {
		return nil, IssuesFrom(err)
	}
	return v, nil
}

// IssuesFrom maps any error produced while reading tokens into Issues:
// existing Issues pass through, enforcement errors keep their code and path,
// everything else becomes a parse_error.
func IssuesFrom(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, fromSimpleIssue(ie.SimpleIssue))
	}
	var se *eng.SyntaxError
	if errors.As(err, &se) {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: Message(CodeParseError, nil), Hint: se.Error(), Offset: se.Offset, Cause: err})
	}
	var inv *eng.InvalidInputError
	if errors.As(err, &inv) {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: Message(CodeParseError, nil), Hint: inv.Error(), Offset: inv.Offset, Cause: err})
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: Message(CodeParseError, nil), Hint: "unexpected end of input", Offset: -1, Cause: err})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: Message(CodeParseError, nil), Hint: err.Error(), Offset: -1, Cause: err})
}

func fromSimpleIssue(si eng.SimpleIssue) Issue {
	return Issue{Path: si.Path, Code: si.Code, Message: Message(si.Code, nil), Hint: si.Message, Offset: si.Offset}
}
