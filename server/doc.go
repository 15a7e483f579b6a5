// Package server exposes the Freelo read API as Model Context Protocol
// tools over stdio.
//
// # Architecture
//
// The server is a thin translation layer on top of the freelo package:
//
//	MCP client (AI assistant host)
//	     |
//	     | (MCP protocol over stdio)
//	     v
//	Server (official MCP Go SDK)
//	     |
//	     +-- one typed handler per tool
//	     v
//	freelo.API (HTTP client)
//
// Each tool maps to exactly one API accessor, with three exceptions:
// download_file also writes the fetched bytes to a temp file,
// search_tasks filters a fetched page client-side, and
// get_project_overview fans out one tasks request per task list.
//
// # Result Shape
//
// A successful call returns the fetched resource as indented JSON text
// content. A failed call returns content of the form
//
//	{"success": false, "error": "freelo API error: Task not found"}
//
// with the result's IsError flag set. Failures are always reported as
// tool results rather than protocol errors so the client can read the
// message and carry on; a failed call never terminates the server.
//
// # Pagination
//
// Collection tools surface only the first page the API returns. The tool
// descriptions say so; no tool accepts a page parameter.
package server
