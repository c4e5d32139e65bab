// Package handlers implements the HTTP API layer of dexkeeper.
//
// The Handler implements the ServerInterface generated from the OpenAPI
// document in api/v1 (openapi.yaml). The generated wrapper binds path and
// query parameters and answers malformed values with 400 before a handler
// runs. Handlers bind request bodies into the generated types, convert them
// to the service inputs and convert models back into the api/v1 wire types.
// All business rules live in the services layer.
//
// # Endpoints
//
//	┌────────┬───────────────────────────┬──────────────────────────────────────┐
//	│ Method │ Endpoint                  │ Description                          │
//	├────────┼───────────────────────────┼──────────────────────────────────────┤
//	│ GET    │ /creatures                │ Filtered and paginated catalog       │
//	│ POST   │ /creatures                │ Upsert a full creature record        │
//	│ GET    │ /creatures/:catalogId     │ One creature                         │
//	│ PUT    │ /creatures/:catalogId     │ Merge fields into a creature         │
//	│ DELETE │ /creatures/:catalogId     │ Delete a creature and its slots      │
//	│ *      │ /trainers[/:id]           │ Trainer CRUD                         │
//	│ GET    │ /trainers/:id/creatures   │ Creatures owned by a trainer         │
//	│ *      │ /tags[/:id]               │ Tag descriptor CRUD                  │
//	│ *      │ /roster[/:id]             │ Roster slots (capacity 6)            │
//	│ GET    │ /insights/tags            │ Tag statistics                       │
//	│ GET    │ /import                   │ Background import job state          │
//	│ POST   │ /import                   │ Start a background import            │
//	│ DELETE │ /import                   │ Cancel the running import            │
//	└────────┴───────────────────────────┴──────────────────────────────────────┘
//
// The creature list accepts search (case-insensitive substring), type and
// types (comma separated, all must match), owner, limit and offset. types is
// a non-exploded form parameter, so repeating it is rejected.
//
// # Responses
//
// Successful bodies are wrapped as {"data": ...}. Errors are {"error": "..."}
// with the status taken from the error type:
//
//	ValidationError, UnknownCreatureError      → 400
//	ResourceNotFoundError                      → 404
//	ConflictError, CapacityExceededError       → 409
//	anything else                              → 500, logged, generic message
//
// # Route registration
//
//	h := handlers.New(creatureSrv, trainerSrv, tagSrv, rosterSrv, insightsSrv, importSrv)
//	h.Register(router, middlewares.BearerScoped(middlewares.Auth(secret)))
//
// Register calls v1.RegisterHandlersWithOptions. The middlewares passed to it
// run after parameter binding, and BearerScoped limits them to the
// operations declared with bearerAuth security.
package handlers
