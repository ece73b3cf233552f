package summarizer

import "fmt"

const promptTemplate = `You are an expert ATC communication analyzer. Analyze the following transcript and provide a response in the exact JSON format shown below.
For short ATC communications, make reasonable assumptions based on standard ATC protocols, but clearly mark inferred information.

IMPORTANT: Ensure the response is valid JSON with all property names and string values enclosed in double quotes.

The response must strictly follow this schema:
{
    "title": "Brief description of the main communication context",
    "tldr": "One-line summary of key events",
    "communications": [
        {
            "speaker": "Who is speaking (if identifiable, prefix with [Inferred] if guessed)",
            "recipient": "Who they're speaking to (if identifiable)",
            "instruction": "Any specific instruction given",
            "location": "Any location mentioned",
            "altitude": "Any altitude mentioned",
            "heading": "Any heading mentioned",
            "action": "Action requested or acknowledged"
        }
    ],
    "details": "Additional relevant information including any assumptions made"
}

Guidelines:
1. For explicit information in the transcript, provide it directly
2. For short ATC communications:
   - Make reasonable assumptions based on standard ATC protocols
   - Prefix inferred information with "[Inferred]"
   - Explain assumptions in the details field
3. For heading instructions, include both numeric and cardinal directions
4. Include context about the phase of flight if it can be reasonably inferred
5. Provide the response as a single, valid JSON object
6. Ensure all property names and string values are enclosed in double quotes

Transcript to analyze:
%s`

func buildPrompt(transcript string) string {
	return fmt.Sprintf(promptTemplate, transcript)
}
