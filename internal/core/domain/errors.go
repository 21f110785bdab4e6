package domain

import "go.trai.ch/zerr"

var (
	// ErrStepAlreadyExists is returned when two derivation steps produce the same artifact.
	ErrStepAlreadyExists = zerr.New("derivation step already exists")

	// ErrMissingDependency is returned when a step requires an artifact no step produces.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the derivation table contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrRootStepHasRequirements is returned when a step sourced from a watched input also requires artifacts.
	ErrRootStepHasRequirements = zerr.New("root step cannot require other artifacts")

	// ErrStepWithoutSource is returned when a step neither reads an input nor requires an artifact.
	ErrStepWithoutSource = zerr.New("step has no input and no requirements")

	// ErrUnknownInput is returned when a trigger names an input the orchestrator does not watch.
	ErrUnknownInput = zerr.New("unknown watched input")

	// ErrInputRead is returned when a watched input cannot be read.
	ErrInputRead = zerr.New("failed to read watched input")

	// ErrDependencyAbsent is recorded when a step is skipped because a required artifact is absent.
	ErrDependencyAbsent = zerr.New("required artifact is absent")

	// ErrStepFailed is returned when a derivation step fails.
	ErrStepFailed = zerr.New("derivation step failed")

	// ErrPublishFailed is returned when a notification sink fails after a successful derivation.
	ErrPublishFailed = zerr.New("failed to publish artifact")

	// ErrChainInterrupted is recorded for steps that never ran because the chain was cancelled.
	ErrChainInterrupted = zerr.New("regeneration interrupted")

	// ErrOrphanedArtifact is returned when a present artifact has an absent dependency.
	ErrOrphanedArtifact = zerr.New("artifact present without its dependencies")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoNetworks is returned when the configuration declares no networks.
	ErrNoNetworks = zerr.New("at least one network is required")

	// ErrDuplicateNetwork is returned when two networks share a name.
	ErrDuplicateNetwork = zerr.New("duplicate network name")

	// ErrDuplicateContract is returned when two contracts share a name.
	ErrDuplicateContract = zerr.New("duplicate contract name")

	// ErrUnknownNetwork is returned when a contract references an undeclared network.
	ErrUnknownNetwork = zerr.New("contract network must exist in networks")

	// ErrAddressAndFactory is returned when a contract source sets both an address and a factory.
	ErrAddressAndFactory = zerr.New("factory and address cannot both be defined")

	// ErrMissingAddress is returned when a contract source sets neither an address nor a factory.
	ErrMissingAddress = zerr.New("contract requires an address or a factory")

	// ErrInvalidAddress is returned when an address is not 0x-prefixed hex.
	ErrInvalidAddress = zerr.New("invalid address")

	// ErrInvalidName is returned when a network or contract name is not a valid identifier.
	ErrInvalidName = zerr.New("name must start with a letter and contain only letters, digits and underscores")

	// ErrInvalidBlockRange is returned when a source ends before it starts.
	ErrInvalidBlockRange = zerr.New("endBlock must not be lower than startBlock")

	// ErrABIReadFailed is returned when a contract ABI file cannot be read.
	ErrABIReadFailed = zerr.New("failed to read contract abi")

	// ErrABIParseFailed is returned when a contract ABI is not valid JSON.
	ErrABIParseFailed = zerr.New("failed to parse contract abi")

	// ErrUnknownFilterEvent is returned when an event filter names an event absent from the ABI.
	ErrUnknownFilterEvent = zerr.New("filter references an event missing from the abi")

	// ErrSchemaParseFailed is returned when the schema file cannot be parsed.
	ErrSchemaParseFailed = zerr.New("failed to parse schema file")

	// ErrUnsupportedDefinition is returned for schema definitions other than object types, enums and known scalars.
	ErrUnsupportedDefinition = zerr.New("unsupported schema definition")

	// ErrDuplicateType is returned when two schema types share a name.
	ErrDuplicateType = zerr.New("duplicate type name")

	// ErrMissingIDField is returned when an entity has no id field.
	ErrMissingIDField = zerr.New("entity must declare an id field")

	// ErrInvalidIDField is returned when an entity id field has an unsupported type.
	ErrInvalidIDField = zerr.New("id field must be a non-null ID, String, Int, BigInt or Bytes")

	// ErrUnknownFieldType is returned when a field references an undeclared type.
	ErrUnknownFieldType = zerr.New("unknown field type")

	// ErrInvalidDerivedField is returned when a @derivedFrom field is malformed.
	ErrInvalidDerivedField = zerr.New("invalid @derivedFrom field")

	// ErrNestedList is returned for list fields nested more than one level.
	ErrNestedList = zerr.New("nested lists are not supported")

	// ErrGqlBuildFailed is returned when the GraphQL schema cannot be built.
	ErrGqlBuildFailed = zerr.New("failed to build graphql schema")

	// ErrDbBuildFailed is returned when the database schema cannot be built.
	ErrDbBuildFailed = zerr.New("failed to build database schema")

	// ErrDatabaseConnectFailed is returned when the database cannot be reached.
	ErrDatabaseConnectFailed = zerr.New("failed to connect to database")

	// ErrMigrationFailed is returned when applying the database schema fails.
	ErrMigrationFailed = zerr.New("failed to migrate database")

	// ErrContextBuildFailed is returned when the handler context cannot be built.
	ErrContextBuildFailed = zerr.New("failed to build handler context")

	// ErrTableNotFound is returned when an entity has no table in the database schema.
	ErrTableNotFound = zerr.New("table not found for entity")

	// ErrEntityNotFound is returned when an entity store is requested for an unknown entity.
	ErrEntityNotFound = zerr.New("entity not found")

	// ErrGenerateFailed is returned when a generated file cannot be written.
	ErrGenerateFailed = zerr.New("failed to generate file")

	// ErrServerStartFailed is returned when the schema server cannot listen.
	ErrServerStartFailed = zerr.New("failed to start schema server")

	// ErrStoreCreateFailed is returned when the fingerprint store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create fingerprint store directory")

	// ErrStoreReadFailed is returned when a fingerprint record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read fingerprint record")

	// ErrStoreUnmarshalFailed is returned when a fingerprint record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal fingerprint record")

	// ErrStoreMarshalFailed is returned when a fingerprint record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal fingerprint record")

	// ErrStoreWriteFailed is returned when a fingerprint record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write fingerprint record")

	// ErrStoreDeleteFailed is returned when a fingerprint record cannot be removed.
	ErrStoreDeleteFailed = zerr.New("failed to delete fingerprint record")

	// ErrCodegenFailed is returned when a one-shot generation leaves artifacts absent.
	ErrCodegenFailed = zerr.New("code generation failed")

	// ErrStatusUnavailable is returned when no dev session answers on the status socket.
	ErrStatusUnavailable = zerr.New("no dev session is running")

	// ErrHookFailed is returned when the reindex command exits with an error.
	ErrHookFailed = zerr.New("reindex command failed")
)
