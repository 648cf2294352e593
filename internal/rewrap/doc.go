// Package rewrap reflows Python string literals and comments so that no
// line exceeds a configured width.
//
// Invariants:
//   - the output still parses: literals are split into adjacent literals
//     (implicit concatenation), triple-quoted content only moves words
//     between its own lines;
//   - raw-flagged literals pass through byte-for-byte;
//   - an element the pass cannot wrap safely is left unchanged, never
//     reported as an error (fail-soft);
//   - running the pass twice equals running it once.
//
// Назначение: чистые функции переноса поверх сканера литералов.
// Не делает: IO, конфигурацию, параллелизм — это internal/driver.
package rewrap
