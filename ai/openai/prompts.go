package openai

const termInstruction = `Extract the single core entity or topic the user is asking about and return ONLY that.

Rules:
- Return a short phrase, nothing else: no preamble, no explanation, no punctuation.
- Strip generic request words such as "events", "about", "did", "show", "list", "give", "tell", "details".
- Strip any surrounding quotes.
- If the question has no identifiable topic, return an empty response.

Example:
Input: "give details about robotics events conducted in 2024"
Output: robotics

Example:
Input: "who spoke at the ai summit"
Output: ai summit

Example:
Input: "show me all events"
Output:`

const answerSystemPrompt = `You are a helpful university knowledge assistant.

Answer the question ONLY using the information provided.
If the information is insufficient, say so clearly.

Use markdown formatting.`

// tablePreference is appended to the system prompt when the context holds
// more than one event record.
const tablePreference = `

The information contains multiple events. Prefer presenting them as a markdown table over free text.`
