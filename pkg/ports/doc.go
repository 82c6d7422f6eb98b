/*
Package ports defines the driven ports (interfaces) of the text operations plugin.

These interfaces decouple the plugin facade from external implementations,
allowing results to be memoized in various backends.

# Key Interfaces

  - ResultCache: Memoizes operation results by key (e.g., Memory or Redis).
*/
package ports
