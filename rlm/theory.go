package rlm

const Theory = `
# 1. Core Mission
Rlm runs a root reasoning model against data too large to place in its
context window. The data lives outside the model, in a sandboxed
variable; the model emits code that explores it and may delegate
bounded excerpts to cheaper sub model calls.

# 2. Design Philosophy
# 2.1 Externalized Context
The root model is never shown the data. It is shown the data's size, a
summary of the sandbox capabilities, and the query. Everything else it
learns by writing code. This is the defining property of the design:
effective context scales with the store, not with the model's window.

# 2.2 Untrusted Free Text
Model output is free text. Code blocks and termination markers are
recognized by fixed grammars; anything unrecognized is simply ignored
and the loop continues. There is no fatal error class in the loop's
normal operating range: sandbox faults become captured output, missing
variable references become placeholder answers, and an exhausted
iteration budget is a normal way for a run to end.

# 2.3 Recursive Delegation
The sandbox exposes llm_query, a synchronous call into a sub model.
The root model filters with code first and spends sub model tokens only
on excerpts it has already narrowed down.

# 3. Implementation Details
# 3.1 Loop
prompt -> response -> FINAL check -> extract code blocks -> execute ->
next prompt from captured output. Each step's output is the next
step's input, so the loop is strictly sequential by construction.

# 3.2 Sandbox
Starlark with a per-session environment. Top-level bindings persist
across blocks; injected bindings (context, llm_query, helpers) are
re-established each block and always win over accumulated variables.
No filesystem, network, or process capability is exposed. Resource
limits (CPU, memory, wall time) are not enforced here and are required
before running untrusted workloads in production.

# 4. Success Metrics
A run answers the query while the root model's prompts stay bounded by
the iteration budget and never contain the stored data itself.
`
