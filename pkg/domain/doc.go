/*
Package domain contains the renderable domain models: Author, Content and Feed.

Each model implements prompt.Renderable and writes a brace-delimited block into the
active builder. Two nesting styles are used on purpose:

  - Content renders its Author in an isolated root call and splices the result
    indented by one level (isolate-then-indent).
  - Feed composes each Content directly into the caller's builder with no extra
    indentation (compose-in-place).

Blocks end with a closing brace and no trailing line break; the caller decides what
follows them.
*/
package domain
