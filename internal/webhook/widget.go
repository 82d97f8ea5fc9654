package webhook

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// widgetPage is the self-contained chat widget served at /chatbot. It keeps
// the assigned user_id in sessionStorage so the conversation survives page
// navigation within the visit.
const widgetPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Jees Hotel Assistant</title>
<style>
  body { margin: 0; font-family: system-ui, sans-serif; background: #f4f4f5; }
  #chat { max-width: 480px; margin: 0 auto; height: 100vh; display: flex; flex-direction: column; background: #fff; }
  #header { padding: 14px 16px; background: #1f2937; color: #fff; font-weight: 600; }
  #messages { flex: 1; overflow-y: auto; padding: 16px; }
  .msg { margin-bottom: 10px; padding: 10px 12px; border-radius: 10px; max-width: 85%; white-space: pre-wrap; }
  .bot { background: #e5e7eb; }
  .user { background: #2563eb; color: #fff; margin-left: auto; }
  #form { display: flex; border-top: 1px solid #e5e7eb; }
  #input { flex: 1; border: 0; padding: 14px; font-size: 15px; outline: none; }
  #send { border: 0; background: #2563eb; color: #fff; padding: 0 20px; cursor: pointer; }
</style>
</head>
<body>
<div id="chat">
  <div id="header">Jees Hotel Assistant</div>
  <div id="messages"></div>
  <form id="form">
    <input id="input" autocomplete="off" placeholder="Type a message...">
    <button id="send" type="submit">Send</button>
  </form>
</div>
<script>
const messages = document.getElementById('messages');
const form = document.getElementById('form');
const input = document.getElementById('input');

function add(text, cls) {
  const div = document.createElement('div');
  div.className = 'msg ' + cls;
  div.textContent = text;
  messages.appendChild(div);
  messages.scrollTop = messages.scrollHeight;
}

async function send(message) {
  const res = await fetch('/api', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({
      action: 'chat',
      user_id: sessionStorage.getItem('hotelbot_user_id') || '',
      message: message
    })
  });
  const data = await res.json();
  if (data.user_id) sessionStorage.setItem('hotelbot_user_id', data.user_id);
  add(data.response || data.error || 'Something went wrong.', 'bot');
}

form.addEventListener('submit', (e) => {
  e.preventDefault();
  const message = input.value.trim();
  if (!message) return;
  add(message, 'user');
  input.value = '';
  send(message);
});

send('hi');
</script>
</body>
</html>`

// Widget serves the chat widget page.
func (h *Handler) Widget(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(widgetPage))
}
