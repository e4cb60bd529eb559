// Package pagefetch downloads a web page and reduces it to the PageSignals
// consumed by identification: the final URL, the document title, and a
// bounded sample of visible body text.
package pagefetch
