/*
Package ports defines the driven ports (interfaces) of the viewer service.

These interfaces decouple session handling from storage backends, so the same HTTP and MCP
surfaces run against memory for a single process or Redis for several replicas.

# Key Interfaces

  - SessionStore: persists and loads view sessions.
  - DistributedLocker: serializes concurrent updates of one session across instances.
*/
package ports
