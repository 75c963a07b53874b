package report

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// MarkdownPreview converts an email body to GitHub-flavored markdown so it
// can be read in a terminal before sending.
func MarkdownPreview(html string) (string, error) {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())

	out, err := conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting email body: %w", err)
	}
	return strings.TrimSpace(blankRuns.ReplaceAllString(out, "\n\n")) + "\n", nil
}
