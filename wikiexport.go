// Package wikiexport provides a CLI tool for exporting DeepWiki
// documentation as markdown. It downloads a wiki page (transforming GitHub
// URLs to their DeepWiki counterparts), extracts the markdown fragments
// embedded in the page's script payloads, and writes them to local files,
// either joined into a single document or split one file per fragment.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, regexp/, fs/).
package wikiexport
