package index

// Schema DDL for the manifests table. The index database persists
// across Attach calls, so every statement is idempotent.
const (
	createManifests = `CREATE TABLE IF NOT EXISTS manifests (
    manifest_id TEXT PRIMARY KEY,
    package_identifier TEXT NOT NULL,
    package_version TEXT NOT NULL,
    manifest_type TEXT NOT NULL,
    locale TEXT NOT NULL DEFAULT '',
    document TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	idxManifestsKey = `CREATE UNIQUE INDEX IF NOT EXISTS idx_manifests_key
    ON manifests(package_identifier, package_version, manifest_type, locale);`

	idxManifestsIdentifier = `CREATE INDEX IF NOT EXISTS idx_manifests_identifier
    ON manifests(package_identifier);`
)

// schemaDDL lists all statements in execution order.
var schemaDDL = []string{
	createManifests,
	idxManifestsKey,
	idxManifestsIdentifier,
}
