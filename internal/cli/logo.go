package cli

// asciiLogo is the mojiscan banner shown in help and version output.
// Box-drawing characters render on every UTF-8 terminal; if they come
// out damaged, the tool has found its first finding.
const asciiLogo = `
┌┬┐┌─┐ ┬┬┌─┐┌─┐┌─┐┌┐┌
││││ │ ││└─┐│  ├─┤│││
┴ ┴└─┘└┘┴└─┘└─┘┴ ┴┘└┘`
