// Package vbpl provides a crawler and structural parser for Vietnamese
// legal documents published on the vbpl.vn portal. It fetches document
// pages, extracts the full-text container, converts it to markdown, and
// segments the text into a chapter/section/article tree along with the
// document's metadata and relationship graph.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package vbpl
